package httpclient

import "encoding/json"

func parseJSON(data []byte, dst any) error {
	if dst == nil {
		return nil
	}
	return json.Unmarshal(data, dst)
}
