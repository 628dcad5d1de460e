package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// newTestContext builds a context for the handler under test with a trace id already assigned
func newTestContext(e *echo.Echo, method, target string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var buf *bytes.Buffer
	switch b := body.(type) {
	case nil:
		buf = &bytes.Buffer{}
	case string:
		buf = bytes.NewBufferString(b)
	default:
		raw, _ := json.Marshal(b)
		buf = bytes.NewBuffer(raw)
	}

	req := httptest.NewRequest(method, target, buf)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(TraceIDContextKey, "test-trace")
	return c, rec
}

func withID(c echo.Context, id string) echo.Context {
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c
}

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func decodeEnvelope(rec *httptest.ResponseRecorder, data interface{}) (envelope, error) {
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		return env, err
	}
	if data != nil && len(env.Data) > 0 {
		if err := json.NewDecoder(strings.NewReader(string(env.Data))).Decode(data); err != nil {
			return env, err
		}
	}
	return env, nil
}

func decodeError(rec *httptest.ResponseRecorder) (ErrorResponse, error) {
	var resp ErrorResponse
	err := json.Unmarshal(rec.Body.Bytes(), &resp)
	return resp, err
}
