package service

import "time"

// LoadLocation resolves an IANA zone name. An empty name gives fallback.
func LoadLocation(name string, fallback *time.Location) (*time.Location, error) {
	if name == "" {
		return fallback, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, invalid("unknown timezone " + name)
	}
	return loc, nil
}
