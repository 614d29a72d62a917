package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// Relational dialects understood by the relational backend.
const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
	DialectMySQL    = "mysql"
)

// Descriptor is the relational connection descriptor. It lives in its own YAML file,
// separate from config.yaml, so operators can swap databases without touching the
// service configuration:
//
//	dbname: users
//	username: svc
//	password: secret
//	params:
//	  dialect: postgres
//	  host: localhost
//	  port: 5432
//	  sslMode: disable
type Descriptor struct {
	DBName   string           `json:"dbname" yaml:"dbname"`
	Username string           `json:"username" yaml:"username"`
	Password string           `json:"password" yaml:"password"`
	Params   DescriptorParams `json:"params" yaml:"params"`
}

// DescriptorParams holds dialect-specific connection settings.
type DescriptorParams struct {
	Dialect string `json:"dialect" yaml:"dialect"`
	Host    string `json:"host" yaml:"host"`
	Port    int    `json:"port" yaml:"port"`
	SSLMode string `json:"sslMode" yaml:"sslMode"`

	// Storage is the SQLite database file; ":memory:" or a file: URI also work.
	Storage string `json:"storage" yaml:"storage"`

	// Replicas receive reads when present.
	Replicas []ReplicaConfig `json:"replicas" yaml:"replicas"`
}

// ReplicaConfig is one read replica; empty credentials fall back to the primary's.
type ReplicaConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
}

// LoadDescriptor reads and validates the descriptor at path.
func LoadDescriptor(path string) (*Descriptor, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("descriptor path is required")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, "stat descriptor %s", path)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read descriptor %s", path)
	}

	desc := new(Descriptor)
	if err := k.UnmarshalWithConf("", desc, unmarshalConf(desc)); err != nil {
		return nil, errors.Wrapf(err, "unmarshal descriptor %s", path)
	}

	if err := desc.Validate(); err != nil {
		return nil, err
	}

	return desc, nil
}

// Validate checks that the descriptor names a supported dialect with enough detail to connect.
func (d *Descriptor) Validate() error {
	d.Params.Dialect = strings.ToLower(strings.TrimSpace(d.Params.Dialect))

	switch d.Params.Dialect {
	case DialectSQLite:
		if d.Params.Storage == "" {
			return errors.New("descriptor: params.storage is required for sqlite")
		}
	case DialectPostgres, DialectMySQL:
		if d.Params.Host == "" {
			return errors.Errorf("descriptor: params.host is required for %s", d.Params.Dialect)
		}
		if d.DBName == "" {
			return errors.Errorf("descriptor: dbname is required for %s", d.Params.Dialect)
		}
	default:
		return errors.Errorf("descriptor: unsupported dialect %q", d.Params.Dialect)
	}

	return nil
}
