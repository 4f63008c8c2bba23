package hashext

import (
	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
	"testing"
)

func TestEncodingString(t *testing.T) {
	Convey("Given encoding names", t, func() {
		Convey("Then they should be parsed case-insensitively", func() {
			encoding, err := EncodingString(" HEX ")
			So(err, ShouldBeNil)
			So(encoding, ShouldEqual, EncodingHex)

			encoding, err = EncodingString("raw")
			So(err, ShouldBeNil)
			So(encoding, ShouldEqual, EncodingRaw)
		})

		Convey("Then String() should return the name back", func() {
			for _, name := range EncodingNames() {
				encoding, err := EncodingString(name)
				So(err, ShouldBeNil)
				So(encoding.String(), ShouldEqual, name)
				So(encoding.IsAEncoding(), ShouldBeTrue)
			}
		})
	})

	Convey("Given a misspelled encoding name", t, func() {
		_, err := EncodingString("hx")

		Convey("Then the error should suggest the closest name", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, `did you mean "hex"`)
		})
	})

	Convey("Given an undefined encoding", t, func() {
		encoding := Encoding(42)

		Convey("Then it should not be an encoding", func() {
			So(encoding.IsAEncoding(), ShouldBeFalse)
			So(encoding.String(), ShouldEqual, "Encoding(42)")
		})

		Convey("And decoding should fail", func() {
			_, err := encoding.Decode("abc")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestEncoding_Decode(t *testing.T) {
	Convey("Given the raw encoding", t, func() {
		Convey("Then text should be taken as is", func() {
			decoded, err := EncodingRaw.Decode("append")
			So(err, ShouldBeNil)
			So(decoded, ShouldResemble, []byte("append"))
		})
	})

	Convey("Given the hex encoding", t, func() {
		Convey("Then valid hex should be decoded", func() {
			decoded, err := EncodingHex.Decode("617070656e64")
			So(err, ShouldBeNil)
			So(decoded, ShouldResemble, []byte("append"))
		})

		Convey("Then malformed hex should be rejected", func() {
			for _, text := range []string{"6", "zz", "61 70"} {
				_, err := EncodingHex.Decode(text)
				So(errors.Is(err, ErrInvalidEncodingInput), ShouldBeTrue)
			}
		})
	})
}

func TestEncoding_Set(t *testing.T) {
	Convey("Given an encoding used as a flag value", t, func() {
		encoding := EncodingRaw

		Convey("When Set() is called with a valid name", func() {
			err := encoding.Set("hex")

			Convey("Then the encoding should change", func() {
				So(err, ShouldBeNil)
				So(encoding, ShouldEqual, EncodingHex)
				So(encoding.Type(), ShouldEqual, "encoding")
			})
		})

		Convey("When Set() is called with an unknown name", func() {
			err := encoding.Set("base64")

			Convey("Then it should fail and keep the encoding", func() {
				So(err, ShouldNotBeNil)
				So(encoding, ShouldEqual, EncodingRaw)
			})
		})
	})
}
