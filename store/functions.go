package store

import (
	"database/sql/driver"
	"fmt"

	sqlite "modernc.org/sqlite"

	"github.com/viant/cbir/distance"
	"github.com/viant/cbir/feature"
)

// RegisterFunctions registers cbir_ssd and cbir_cosine with the driver so
// they are available on connections opened after this call. Both take two
// vector BLOBs (see EncodeVector) and return the corresponding distance,
// which lets ranking run as an ORDER BY inside SQLite.
func RegisterFunctions() error {
	// Idempotent registration; the driver rejects duplicates and we ignore that.
	_ = sqlite.RegisterDeterministicScalarFunction("cbir_ssd", 2, ssdImpl)
	_ = sqlite.RegisterDeterministicScalarFunction("cbir_cosine", 2, cosineImpl)
	return nil
}

func asVector(arg driver.Value) (feature.Vector, error) {
	switch v := arg.(type) {
	case nil:
		return nil, nil
	case []byte:
		return DecodeVector(v)
	default:
		return nil, fmt.Errorf("store: unsupported argument type %T for vector; want BLOB", arg)
	}
}

func ssdImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	return scalarDistance("cbir_ssd", args, distance.SSD)
}

func cosineImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	return scalarDistance("cbir_cosine", args, distance.Cosine)
}

func scalarDistance(name string, args []driver.Value, metric func(a, b feature.Vector) (float64, error)) (driver.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("%s: expected 2 arguments, got %d", name, len(args))
	}
	a, err := asVector(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asVector(args[1])
	if err != nil {
		return nil, err
	}
	if a == nil || b == nil {
		return nil, nil
	}
	d, err := metric(a, b)
	if err != nil {
		return nil, err
	}
	return d, nil
}
