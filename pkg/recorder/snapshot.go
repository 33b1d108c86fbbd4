package recorder

import (
	"os"

	"github.com/pkg/errors"
	"github.com/unbasical/mockresponse/pkg/response"
	"gopkg.in/yaml.v3"
)

// Snapshot is a plain copy of the recorded state, suitable for golden files.
type Snapshot struct {
	ConnectionID response.ConnectionID  `yaml:"connection-id,omitempty"`
	Status       int                    `yaml:"status"`
	Headers      []response.HeaderField `yaml:"headers,omitempty"`
	Cookies      map[string]string      `yaml:"cookies,omitempty"`
	DownloadFile string                 `yaml:"download-file,omitempty"`
	Body         string                 `yaml:"body"`
}

// Snapshot copies the current state of r.
func (r *Recorder) Snapshot() Snapshot {
	return TakeSnapshot(r)
}

// TakeSnapshot copies the state exposed by any response.Reader.
func TakeSnapshot(r response.Reader) Snapshot {
	s := Snapshot{
		ConnectionID: r.ConnectionID(),
		Status:       r.StatusCode(),
		Headers:      r.Headers(),
		Cookies:      r.Cookies(),
		DownloadFile: r.DownloadFile(),
		Body:         string(r.Body()),
	}
	if len(s.Headers) == 0 {
		s.Headers = nil
	}
	if len(s.Cookies) == 0 {
		s.Cookies = nil
	}
	return s
}

// WithoutConnectionID returns a copy of s which compares equal across connections.
func (s Snapshot) WithoutConnectionID() Snapshot {
	s.ConnectionID = ""
	return s
}

// YAML encodes the snapshot.
func (s Snapshot) YAML() ([]byte, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return nil, errors.Wrap(err, "unable to encode snapshot")
	}
	return out, nil
}

// ParseSnapshot decodes a snapshot written by Snapshot.YAML.
func ParseSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Snapshot{}, errors.Wrap(err, "unable to parse snapshot")
	}
	return s, nil
}

// LoadSnapshot reads a snapshot from a file.
func LoadSnapshot(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, errors.Wrapf(err, "unable to read snapshot %q", path)
	}
	return ParseSnapshot(data)
}

// WriteSnapshot stores the snapshot in a file.
func WriteSnapshot(path string, s Snapshot) error {
	data, err := s.YAML()
	if err != nil {
		return err
	}
	return errors.Wrapf(os.WriteFile(path, data, 0o600), "unable to write snapshot %q", path)
}
