package models

import (
	"bytes"
	"fmt"
	"strconv"
)

// ID is a resource identifier. The backend serializes envelope ids as JSON
// strings and embedded child ids as JSON numbers; ID unmarshals both.
type ID int64

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(id), 10)), nil
}

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = 0
		return nil
	}
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q: %w", string(b), err)
	}
	*id = ID(n)
	return nil
}
