package payload

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jellydator/validation"
)

// Decoder reads strict JSON request bodies and validates them when the
// target knows how.
type Decoder struct{}

func (Decoder) DecodeJSONPayload(r *http.Request, object any) (err error) {
	defer func() {
		errClose := r.Body.Close()
		if err == nil {
			err = errClose
		}
	}()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err = decoder.Decode(object); err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}

	if v, ok := object.(validation.Validatable); ok {
		if err = v.Validate(); err != nil {
			return fmt.Errorf("validating payload: %w", err)
		}
	}

	return nil
}
