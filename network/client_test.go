package network

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vixstremio/vixstremio/key"
)

func echoAgent() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(r.Header.Get("User-Agent")))
	}))
}

func readAll(resp *http.Response) string {
	defer resp.Body.Close()
	buf := make([]byte, 512)
	n, _ := resp.Body.Read(buf)
	return string(buf[:n])
}

func TestNew(t *testing.T) {
	Convey("Given an upstream echoing the User-Agent", t, func() {
		server := echoAgent()
		defer server.Close()

		Convey("The configured agent is sent", func() {
			client := New(Options{UserAgent: "vix-test/1.0"})
			resp, err := client.Get(server.URL)
			So(err, ShouldBeNil)
			So(readAll(resp), ShouldEqual, "vix-test/1.0")
		})

		Convey("A caller-provided agent wins", func() {
			client := New(Options{UserAgent: "vix-test/1.0"})
			req, _ := http.NewRequest(http.MethodGet, server.URL, nil)
			req.Header.Set("User-Agent", "custom")
			resp, err := client.Do(req)
			So(err, ShouldBeNil)
			So(readAll(resp), ShouldEqual, "custom")
		})

		Convey("Plain HTTP passes through the fingerprint transport", func() {
			client := New(Options{UserAgent: "vix-test/1.0", Fingerprint: true, Timeout: 5 * time.Second})
			resp, err := client.Get(server.URL)
			So(err, ShouldBeNil)
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(readAll(resp), ShouldEqual, "vix-test/1.0")
		})
	})

	Convey("A non-positive timeout falls back to one minute", t, func() {
		So(New(Options{}).Timeout, ShouldEqual, time.Minute)
		So(New(Options{Timeout: 3 * time.Second}).Timeout, ShouldEqual, 3*time.Second)
	})
}

func TestOptionsFromConfig(t *testing.T) {
	Convey("Options are read from configuration", t, func() {
		viper.Reset()
		defer viper.Reset()

		viper.Set(key.NetworkTimeout, 12)
		viper.Set(key.NetworkUserAgent, "agent")
		viper.Set(key.NetworkTLSFingerprint, true)

		opts := OptionsFromConfig()
		So(opts.Timeout, ShouldEqual, 12*time.Second)
		So(opts.UserAgent, ShouldEqual, "agent")
		So(opts.Fingerprint, ShouldBeTrue)
	})
}
