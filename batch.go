package hashext

import (
	"fmt"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// BatchFile is a list of length extension jobs
//
//	encoding: hex
//	jobs:
//	  - name: signature
//	    base_digest: "6036708eba0d11f6ef52ad44e8b74d5b"
//	    base_length: 10
//	    extension: "617070656e64"
type BatchFile struct {
	// Encoding of base and extension of every job. Defaults to raw
	Encoding string     `yaml:"encoding"`
	Jobs     []BatchJob `yaml:"jobs"`
}

type BatchJob struct {
	Name       string `yaml:"name"`
	BaseDigest string `yaml:"base_digest"`
	BaseLength int    `yaml:"base_length"`

	// Base is optional. A filler is used when it's missing
	Base      *string `yaml:"base"`
	Extension string  `yaml:"extension"`
}

func (j BatchJob) name(i int) string {
	if j.Name != "" {
		return j.Name
	}

	return fmt.Sprintf("job-%d", i+1)
}

// BatchResult pairs a job name with its forgery
type BatchResult struct {
	Name    string `yaml:"name"`
	Forgery `yaml:",inline"`
}

// LoadBatch parses the batch file at path
func LoadBatch(fs afero.Fs, path string) (*BatchFile, error) {
	contents, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}

	var batch BatchFile
	if err := yaml.Unmarshal(contents, &batch); err != nil {
		return nil, errors.Wrap(err, "batch")
	}

	return &batch, nil
}

// Requests decodes every job with the batch encoding.
// Decoding errors are reported before any job runs.
func (b *BatchFile) Requests() ([]ExtendRequest, error) {
	encoding := EncodingRaw
	if b.Encoding != "" {
		var err error
		encoding, err = EncodingString(b.Encoding)
		if err != nil {
			return nil, err
		}
	}

	requests := make([]ExtendRequest, len(b.Jobs))
	for i, job := range b.Jobs {
		extension, err := encoding.Decode(job.Extension)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: extension", job.name(i))
		}

		var base []byte
		if job.Base != nil {
			base, err = encoding.Decode(*job.Base)
			if err != nil {
				return nil, errors.Wrapf(err, "%s: base", job.name(i))
			}
		}

		requests[i] = ExtendRequest{
			BaseLength:  job.BaseLength,
			BaseDigest:  job.BaseDigest,
			Extension:   extension,
			AssumedBase: base,
		}
	}

	return requests, nil
}
