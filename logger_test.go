package hashext

import (
	"bytes"
	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
	"testing"
)

func TestLogger(t *testing.T) {
	Convey("Given a logger", t, func() {
		logger := NewLogger()

		var hooked []string
		logger.SetOnLog(func(message string) {
			hooked = append(hooked, message)
		})

		var buffer bytes.Buffer
		logger.SetOutput(&buffer)

		Convey("When Log() is called", func() {
			logger.Log("Extending")

			Convey("Then the hook and the output should receive the message", func() {
				So(hooked, ShouldResemble, []string{"Extending"})
				So(buffer.String(), ShouldContainSubstring, "Extending")
			})
		})

		Convey("When the level is above info", func() {
			logger.SetLevel(logrus.WarnLevel)
			logger.Log("Extending")
			logger.Debug("details")

			Convey("Then only the hook should receive the message", func() {
				So(hooked, ShouldResemble, []string{"Extending"})
				So(buffer.String(), ShouldBeEmpty)
			})
		})

		Convey("When the level is debug", func() {
			logger.SetLevel(logrus.DebugLevel)
			logger.Debug("cache miss")

			Convey("Then only the output should receive the message", func() {
				So(hooked, ShouldBeEmpty)
				So(buffer.String(), ShouldContainSubstring, "cache miss")
			})
		})
	})
}
