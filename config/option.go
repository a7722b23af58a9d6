package config

import (
	"fmt"
	"math"

	"github.com/funkygao/zmq"
)

// convertOption coerces a decoded TOML/YAML value to the Go type the
// option is marshalled as: int64, uint64 or []byte.
func convertOption(o zmq.Option, value any) (any, error) {
	switch o.Shape() {
	case zmq.ShapeBytes:
		switch v := value.(type) {
		case string:
			return []byte(v), nil
		case []byte:
			return v, nil
		}
		return nil, fmt.Errorf("want string, got %T", value)

	case zmq.ShapeUint64:
		n, err := toInt64(value)
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("negative value %d", n)
		}
		return uint64(n), nil
	}

	n, err := toInt64(value)
	if err != nil {
		return nil, err
	}
	return n, nil
}

func toInt64(value any) (int64, error) {
	switch v := value.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case uint64:
		if v > math.MaxInt64 {
			return 0, fmt.Errorf("value %d out of range", v)
		}
		return int64(v), nil
	case float64:
		if v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
			return 0, fmt.Errorf("want integer, got %v", v)
		}
		return int64(v), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	}
	return 0, fmt.Errorf("want integer, got %T", value)
}

func applyOption(s *zmq.Socket, o zmq.Option, value any) error {
	v, err := convertOption(o, value)
	if err != nil {
		return err
	}

	switch v := v.(type) {
	case []byte:
		return s.SetBytes(o, v)
	case uint64:
		return s.SetUint64(o, v)
	case int64:
		return s.SetInt64(o, v)
	}
	return nil
}
