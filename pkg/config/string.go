package config

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// PathList accepts a single path or a list of paths
type PathList []string

func (s *PathList) decode(a interface{}) error {
	switch d := a.(type) {
	case nil:

	case string:
		*s = append(*s, d)

	case []string:
		*s = append(*s, d...)

	case []interface{}:
		for _, de := range d {
			if err := s.decode(de); err != nil {
				return err
			}
		}

	default:
		return errors.Errorf("unexpected type %T for path: %+v", d, d)
	}

	return nil
}

func (s *PathList) UnmarshalJSON(b []byte) error {
	var a interface{}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}

	*s = nil
	return s.decode(a)
}
