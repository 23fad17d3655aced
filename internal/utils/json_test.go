package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type payload struct {
	Name string `json:"name"`
}

func TestDecodeJSONRequest(t *testing.T) {
	cases := []struct {
		body    string
		limit   int64
		wantErr bool
	}{
		{`{"name":"x"}`, 1024, false},
		{`{"name":"x","extra":1}`, 1024, true},
		{`{"name":`, 1024, true},
		{`{"name":"x"}{"name":"y"}`, 1024, true},
		{`{"name":"` + strings.Repeat("a", 100) + `"}`, 16, true},
	}
	for _, c := range cases {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(c.body))
		var p payload
		err := DecodeJSONRequest(httptest.NewRecorder(), r, &p, c.limit)
		if (err != nil) != c.wantErr {
			t.Errorf("DecodeJSONRequest(%.20q) err = %v; wantErr %v", c.body, err, c.wantErr)
		}
	}
}

func TestReadRequestBodyLimit(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("a", 10)))
	_, err := ReadRequestBody(httptest.NewRecorder(), r, 4)
	var tooLarge *http.MaxBytesError
	if !errors.As(err, &tooLarge) {
		t.Errorf("err = %v; want MaxBytesError", err)
	}

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("abc"))
	body, err := ReadRequestBody(httptest.NewRecorder(), r, 4)
	if err != nil || string(body) != "abc" {
		t.Errorf("body = %q, err = %v", body, err)
	}
}
