/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package log

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/asgardeo/webflow/internal/system/constants"
)

const clfTimeLayout = "02/Jan/2006:15:04:05 -0700"

// AccessLogHandler logs each request as an Apache CLF line with the response time in milliseconds
// appended. Requests that belong to an operation carry its masked hash as a field, and server
// errors are logged at warn level.
func AccessLogHandler(logger *Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(lrw, r)

		elapsed := time.Since(start)
		line := fmt.Sprintf(`%s - - [%s] "%s %s %s" %d %d %d`,
			remoteHost(r), start.Format(clfTimeLayout), r.Method, r.RequestURI, r.Proto,
			lrw.statusCode, lrw.size, elapsed.Milliseconds())

		fields := []Field{Int("status", lrw.statusCode)}
		if hash := r.Header.Get(constants.OperationHashHeaderName); hash != "" {
			fields = append(fields, String(LoggerKeyOperationHash, MaskString(hash)))
		}

		if lrw.statusCode >= http.StatusInternalServerError {
			logger.Warn(line, fields...)
			return
		}
		logger.Info(line, fields...)
	})
}

func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil || host == "" {
		return r.RemoteAddr
	}
	return host
}

// loggingResponseWriter records the status code and body size written through it.
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func (lrw *loggingResponseWriter) Write(b []byte) (int, error) {
	size, err := lrw.ResponseWriter.Write(b)
	lrw.size += size
	return size, err
}
