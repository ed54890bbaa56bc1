package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout accepted
// from a JSON file.
type StructuredJSONConfig struct {
	Adapter struct {
		HTTPAddress    string   `json:"address"`
		UploadPath     string   `json:"upload_path"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Auth struct {
		Token     string `json:"token"`
		TokenFile string `json:"token_file"`
	} `json:"auth,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"address"`
		UploadPath     string   `json:"upload_path"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Upload struct {
		Email    string   `json:"email"`
		FolderID string   `json:"folder_id"`
		Paths    []string `json:"paths"`
	} `json:"upload,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err = json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			UploadPath:     jsonCfg.Adapter.UploadPath,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Auth: Auth{
			Token:     jsonCfg.Auth.Token,
			TokenFile: jsonCfg.Auth.TokenFile,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			UploadPath:     jsonCfg.Server.UploadPath,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Upload: Upload{
			Email:    jsonCfg.Upload.Email,
			FolderID: jsonCfg.Upload.FolderID,
			Paths:    jsonCfg.Upload.Paths,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		return nil
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
