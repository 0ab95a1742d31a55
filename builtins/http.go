// ==============================================================================================
// FILE: builtins/http.go
// ==============================================================================================
// PURPOSE: http_get/வலை_படி, http_post/வலை_அனுப்பு, http_put/வலை_புதுப்பி,
//          http_delete/வலை_நீக்கு, file_upload/கோப்பு_பதிவேற்று,
//          http_request/வலை_கோரிக்கை (variadic, custom headers).
//          Built on stdlib net/http: no example in the corpus wires a third-party HTTP
//          client, so this is the one deliberate stdlib-only choice in the Domain Stack
//          (see DESIGN.md).
// ==============================================================================================

package builtins

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"agam/object"

	"github.com/juju/errors"
)

var httpClient = &http.Client{Timeout: 30 * time.Second}

func httpBuiltins() []entry {
	return []entry{
		{
			names: []string{"http_get", "வலை_படி"},
			arity: 1,
			fn: func(args []object.Object) (object.Object, error) {
				url, err := oneString("http_get", args)
				if err != nil {
					return nil, err
				}
				return doRequest(http.MethodGet, url, nil, nil)
			},
		},
		{
			names: []string{"http_post", "வலை_அனுப்பு"},
			arity: 2,
			fn: func(args []object.Object) (object.Object, error) {
				url, body, err := twoStrings("http_post", args)
				if err != nil {
					return nil, err
				}
				return doRequest(http.MethodPost, url, []byte(body), nil)
			},
		},
		{
			names: []string{"http_put", "வலை_புதுப்பி"},
			arity: 2,
			fn: func(args []object.Object) (object.Object, error) {
				url, body, err := twoStrings("http_put", args)
				if err != nil {
					return nil, err
				}
				return doRequest(http.MethodPut, url, []byte(body), nil)
			},
		},
		{
			names: []string{"http_delete", "வலை_நீக்கு"},
			arity: 1,
			fn: func(args []object.Object) (object.Object, error) {
				url, err := oneString("http_delete", args)
				if err != nil {
					return nil, err
				}
				return doRequest(http.MethodDelete, url, nil, nil)
			},
		},
		{
			names: []string{"file_upload", "கோப்பு_பதிவேற்று"},
			arity: 2,
			fn: func(args []object.Object) (object.Object, error) {
				url, path, err := twoStrings("file_upload", args)
				if err != nil {
					return nil, err
				}
				return uploadFile(url, path)
			},
		},
		{
			names:    []string{"http_request", "வலை_கோரிக்கை"},
			arity:    2,
			variadic: true,
			fn: func(args []object.Object) (object.Object, error) {
				method, url, err := twoStrings("http_request", args)
				if err != nil {
					return nil, err
				}
				var body []byte
				var headers *object.Dict
				if len(args) >= 3 {
					if s, ok := args[2].(*object.String); ok {
						body = []byte(s.Value)
					}
				}
				if len(args) >= 4 {
					h, ok := args[3].(*object.Dict)
					if !ok {
						return nil, fmt.Errorf("http_request-இன் நான்காவது வாதம் headers அகராதியாக இருக்க வேண்டும்")
					}
					headers = h
				}
				return doRequest(method, url, body, headers)
			},
		},
	}
}

func doRequest(method, url string, body []byte, headers *object.Dict) (object.Object, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return nil, errors.Annotatef(err, "%s %s கோரிக்கையை உருவாக்க முடியவில்லை", method, url)
	}
	if headers != nil {
		for _, k := range headers.Keys() {
			v, _ := headers.Get(k)
			req.Header.Set(k, displayString(v))
		}
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, errors.Annotatef(err, "%s %s தோல்வியடைந்தது", method, url)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Annotatef(err, "%s %s-இன் பதிலை படிக்க முடியவில்லை", method, url)
	}

	result := object.NewDict()
	result.Set("status", &object.Number{Value: float64(resp.StatusCode)})
	result.Set("body", &object.String{Value: string(data)})
	return result, nil
}

func uploadFile(url, path string) (object.Object, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Annotatef(err, "கோப்பு %q-ஐ திறக்க முடியவில்லை", path)
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, errors.Annotate(err, "multipart படிவத்தை உருவாக்க முடியவில்லை")
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, errors.Annotatef(err, "கோப்பு %q-ஐ படிவத்தில் நகலெடுக்க முடியவில்லை", path)
	}
	if err := writer.Close(); err != nil {
		return nil, errors.Annotate(err, "multipart படிவத்தை மூட முடியவில்லை")
	}

	req, err := http.NewRequest(http.MethodPost, url, &buf)
	if err != nil {
		return nil, errors.Annotatef(err, "%s-க்கான பதிவேற்ற கோரிக்கையை உருவாக்க முடியவில்லை", url)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, errors.Annotatef(err, "கோப்பு பதிவேற்றம் %s-இல் தோல்வியடைந்தது", url)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Annotate(err, "பதிவேற்ற பதிலை படிக்க முடியவில்லை")
	}

	result := object.NewDict()
	result.Set("status", &object.Number{Value: float64(resp.StatusCode)})
	result.Set("body", &object.String{Value: string(data)})
	return result, nil
}
