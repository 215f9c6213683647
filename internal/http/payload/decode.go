package payload

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jellydator/validation"
)

type Decoder struct{}

// DecodeJSONPayload decodes the request body into object and validates it
// when object implements validation.Validatable. An empty body leaves object untouched.
func (d Decoder) DecodeJSONPayload(r *http.Request, object any) (err error) {
	if r.Body == nil || r.Body == http.NoBody || r.ContentLength == 0 {
		return validate(object)
	}

	defer func() {
		errClose := r.Body.Close()
		if err == nil {
			err = errClose
		}
	}()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	decoder.UseNumber()

	if err = decoder.Decode(object); err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}
	return validate(object)
}

func validate(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}
	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}
	return nil
}
