// Package env loads configuration from environment variables.
package env

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"time"

	"github.com/redfin/insist/pkg/errorkit"
)

const (
	ErrLoadInvalidData            errorkit.Error = "ErrLoadInvalidData"
	ErrMissingEnvironmentVariable errorkit.Error = "ErrMissingEnvironmentVariable"
)

// Lookup reads the environment variable under key and parses it into T.
// The bool result reports whether a value (or a DefaultValue) was found.
func Lookup[T any](key string, opts ...LookupOption) (T, bool, error) {
	var conf lookupEnvOptions
	for _, opt := range opts {
		opt.configure(&conf)
	}
	val, ok, err := lookupEnv(reflect.TypeOf((*T)(nil)).Elem(), key, conf)
	if err != nil || !ok {
		return *new(T), ok, err
	}
	return val.Interface().(T), true, nil
}

type LookupOption interface{ configure(*lookupEnvOptions) }

type funcLookupOption func(*lookupEnvOptions)

func (fn funcLookupOption) configure(options *lookupEnvOptions) { fn(options) }

func DefaultValue(val string) LookupOption {
	return funcLookupOption(func(options *lookupEnvOptions) {
		options.DefaultValue = &val
	})
}

func Required() LookupOption {
	return funcLookupOption(func(options *lookupEnvOptions) {
		options.IsRequired = true
	})
}

// Load populates the exported fields of the struct behind ptr
// which have an `env` struct tag.
//
//	type Config struct {
//		Interval time.Duration `env:"POLL_INTERVAL" default:"500ms"`
//		Retries  int           `env:"RETRIES" required:"true"`
//	}
func Load[T any](ptr *T) error {
	if ptr == nil {
		return ErrLoadInvalidData.F("nil value received")
	}
	rv := reflect.ValueOf(ptr).Elem()
	if rv.Kind() != reflect.Struct {
		return ErrLoadInvalidData.F("non-struct type received: %s", rv.Type().String())
	}
	return loadVisitStruct(rv)
}

func loadVisitStruct(rStruct reflect.Value) error {
	for i, numField := 0, rStruct.NumField(); i < numField; i++ {
		rStructField := rStruct.Type().Field(i)
		if !rStructField.IsExported() {
			continue
		}
		field := rStruct.Field(i)
		if field.Kind() == reflect.Struct && field.Type() != timeType {
			if err := loadVisitStruct(field); err != nil {
				return err
			}
			continue
		}
		osEnvKey, ok := rStructField.Tag.Lookup(envTagKey)
		if !ok {
			continue
		}
		opts, err := getLookupEnvOptions(rStructField.Tag)
		if err != nil {
			return err
		}
		val, ok, err := lookupEnv(field.Type(), osEnvKey, opts)
		if err != nil {
			return fmt.Errorf("error parsing the value for %s: %w", rStructField.Name, err)
		}
		if !ok {
			continue
		}
		field.Set(val)
	}
	return nil
}

const envTagKey = "env"

var (
	tagsForDefaultValue = []string{"env-default", "default"}
	tagsForRequired     = []string{"env-required", "required"}
)

func getLookupEnvOptions(tag reflect.StructTag) (lookupEnvOptions, error) {
	var opts lookupEnvOptions
	for _, key := range tagsForDefaultValue {
		if value, ok := tag.Lookup(key); ok {
			opts.DefaultValue = &value
			break
		}
	}
	for _, key := range tagsForRequired {
		value, ok := tag.Lookup(key)
		if !ok {
			continue
		}
		isRequired, err := strconv.ParseBool(value)
		if err != nil {
			return opts, ErrLoadInvalidData.Wrap(err)
		}
		opts.IsRequired = isRequired
		break
	}
	return opts, nil
}

type lookupEnvOptions struct {
	DefaultValue *string
	IsRequired   bool
}

func lookupEnv(typ reflect.Type, key string, opts lookupEnvOptions) (reflect.Value, bool, error) {
	val, ok := os.LookupEnv(key)
	if !ok && opts.DefaultValue != nil {
		ok = true
		val = *opts.DefaultValue
	}
	if !ok {
		var err error
		if opts.IsRequired {
			err = ErrMissingEnvironmentVariable.F("%s", key)
		}
		return reflect.Value{}, false, err
	}
	rv, err := parse(typ, val)
	if err != nil {
		return reflect.Value{}, false, fmt.Errorf("%s: %w", key, err)
	}
	return rv, true, nil
}

var (
	durationType = reflect.TypeOf(time.Duration(0))
	timeType     = reflect.TypeOf(time.Time{})
)

func parse(typ reflect.Type, raw string) (reflect.Value, error) {
	ptr := reflect.New(typ)
	elem := ptr.Elem()
	switch {
	case typ == durationType:
		d, err := time.ParseDuration(raw)
		if err != nil {
			return reflect.Value{}, err
		}
		elem.SetInt(int64(d))
		return elem, nil
	case typ == timeType:
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return reflect.Value{}, err
		}
		elem.Set(reflect.ValueOf(t))
		return elem, nil
	}
	switch typ.Kind() {
	case reflect.String:
		elem.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return reflect.Value{}, err
		}
		elem.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(raw, 10, typ.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		elem.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(raw, 10, typ.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		elem.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, typ.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		elem.SetFloat(f)
	default:
		return reflect.Value{}, ErrLoadInvalidData.F("unsupported type: %s", typ.String())
	}
	return elem, nil
}
