package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

const defaultMongoURI = "mongodb://127.0.0.1:27017"

type DBConfig struct {
	URI            string `yaml:"uri"`
	Database       string `yaml:"database"`
	Collection     string `yaml:"collection"`
	MaxPoolSize    int    `yaml:"maxPoolSize"`
	ConnectTimeout int    `yaml:"connectTimeout"`
}

type S3Config struct {
	Bucket          string `yaml:"bucket"`
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"accessKeyID"`
	SecretAccessKey string `yaml:"secretAccessKey"`
	UseSSL          bool   `yaml:"useSSL"`
	Region          string `yaml:"region"`
}

type Config struct {
	Addr    string   `yaml:"addr"`
	SSLCert string   `yaml:"sslCert"`
	SSLKey  string   `yaml:"sslKey"`
	DB      DBConfig `yaml:"db"`
	S3      S3Config `yaml:"s3"`
}

func DefaultConfig() *Config {
	return &Config{
		Addr: "127.0.0.1:8080",
		DB: DBConfig{
			URI:            defaultMongoURI,
			Database:       "treense",
			Collection:     "treeRecords",
			MaxPoolSize:    10,
			ConnectTimeout: 5,
		},
		S3: S3Config{
			Bucket: "treense",
			UseSSL: false,
			Region: "us-east-1",
		},
	}
}

// LoadYAMLConfig load config from filename in YAML format
func LoadYAMLConfig(filename string, cfg interface{}) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("ReadFile: %v", err)
	}
	err = yaml.Unmarshal(data, cfg)
	return err
}

func InitConfig(configPath string) (*Config, error) {
	conf := DefaultConfig()

	err := LoadYAMLConfig(configPath, conf)
	if err != nil {
		return nil, err
	}

	return conf, nil
}
