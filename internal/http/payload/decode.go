package payload

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// maxPayloadBytes bounds request bodies; every accepted payload is a small JSON object.
const maxPayloadBytes = 1 << 16

type Decoder struct{}

func (Decoder) DecodeJSONPayload(r *http.Request, object any) (err error) {
	defer func() {
		errClose := r.Body.Close()
		if err == nil {
			err = errClose
		}
	}()

	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxPayloadBytes))
	decoder.DisallowUnknownFields()

	if err = decoder.Decode(object); err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}

	return nil
}
