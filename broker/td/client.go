package td

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const defaultBaseURL = "https://api.tdameritrade.com/v1"

// api is a minimal authenticated client for the TD Ameritrade REST API.
type api struct {
	token  string
	base   string
	client *http.Client
}

func newAPI(token string) *api {
	return &api{token: token, base: defaultBaseURL, client: new(http.Client)}
}

// get performs an authenticated GET on an API path and decodes the JSON
// response into data.
func (a *api) get(ctx context.Context, path string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.base+"/"+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+a.token)

	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}
