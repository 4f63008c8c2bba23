package hashext

import (
	"context"
	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
	"testing"
)

const batchYAML = `encoding: hex
jobs:
  - name: known
    base_digest: "6036708eba0d11f6ef52ad44e8b74d5b"
    base_length: 10
    base: "73656372657464617461"
    extension: "617070656e64"
  - base_digest: "6036708eba0d11f6ef52ad44e8b74d5b"
    base_length: 10
    extension: "617070656e64"
`

func TestLoadBatch(t *testing.T) {
	Convey("Given a batch file", t, func() {
		client, _ := newTestClient()
		So(afero.WriteFile(client.options.FS, "jobs.yaml", []byte(batchYAML), modeFile), ShouldBeNil)

		Convey("When LoadBatch() is called", func() {
			batch, err := client.LoadBatch("jobs.yaml")

			Convey("Then the jobs should be parsed", func() {
				So(err, ShouldBeNil)
				So(batch.Encoding, ShouldEqual, "hex")
				So(len(batch.Jobs), ShouldEqual, 2)
				So(*batch.Jobs[0].Base, ShouldEqual, "73656372657464617461")
				So(batch.Jobs[1].Base, ShouldBeNil)
			})

			Convey("And RunBatch() should forge every job", func() {
				results, err := client.RunBatch(context.Background(), batch)
				So(err, ShouldBeNil)
				So(len(results), ShouldEqual, 2)

				So(results[0].Name, ShouldEqual, "known")
				So(results[0].MessageHex, ShouldEqual, appendMessageHex)
				So(results[0].Digest, ShouldEqual, appendForgedDigest)

				So(results[1].Name, ShouldEqual, "job-2")
				So(results[1].Digest, ShouldEqual, appendForgedDigest)
			})

			Convey("And the results can be written", func() {
				results, err := client.RunBatch(context.Background(), batch)
				So(err, ShouldBeNil)
				So(client.WriteBatchResults("results.yaml", results), ShouldBeNil)

				contents, err := afero.ReadFile(client.options.FS, "results.yaml")
				So(err, ShouldBeNil)
				So(string(contents), ShouldContainSubstring, "name: known")
				So(string(contents), ShouldContainSubstring, "digest: "+appendForgedDigest)
			})
		})
	})

	Convey("Given a missing batch file", t, func() {
		_, err := LoadBatch(afero.NewMemMapFs(), "missing.yaml")

		Convey("Then it should fail", func() {
			So(err, ShouldNotBeNil)
		})
	})
}

func TestBatchFile_Requests(t *testing.T) {
	Convey("Given a batch without an encoding", t, func() {
		batch := &BatchFile{
			Jobs: []BatchJob{{BaseDigest: secretDataDigest, BaseLength: 10, Extension: appendExtension}},
		}

		Convey("Then raw encoding should be used", func() {
			requests, err := batch.Requests()
			So(err, ShouldBeNil)
			So(requests[0].Extension, ShouldResemble, []byte(appendExtension))
			So(requests[0].AssumedBase, ShouldBeNil)
		})
	})

	Convey("Given a batch with malformed hex", t, func() {
		batch := &BatchFile{
			Encoding: "hex",
			Jobs:     []BatchJob{{Name: "broken", Extension: "xyz"}},
		}

		Convey("Then Requests() should fail with the job name", func() {
			_, err := batch.Requests()
			So(errors.Is(err, ErrInvalidEncodingInput), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "broken: extension")
		})
	})

	Convey("Given a batch with an unknown encoding", t, func() {
		batch := &BatchFile{Encoding: "base64"}

		Convey("Then Requests() should fail", func() {
			_, err := batch.Requests()
			So(err, ShouldNotBeNil)
		})
	})
}
