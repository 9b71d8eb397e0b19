package insist_test

import (
	"testing"
	"time"

	"github.com/redfin/insist"
	"github.com/redfin/insist/pkg/patience"
	"go.llib.dev/testcase"
)

func TestLoadConfig(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Before(func(t *testcase.T) {
		testcase.UnsetEnv(t, "INSIST_POLL_INTERVAL")
		testcase.UnsetEnv(t, "INSIST_DEFAULT_TIMEOUT")
		testcase.UnsetEnv(t, "INSIST_DEFAULT_RETRIES")
	})

	s.Test("defaults", func(t *testcase.T) {
		c, err := insist.LoadConfig()
		t.Must.NoError(err)
		t.Must.Equal(insist.Config{PollInterval: 500 * time.Millisecond}, c)
	})

	s.Test("values from the environment", func(t *testcase.T) {
		testcase.SetEnv(t, "INSIST_POLL_INTERVAL", "10ms")
		testcase.SetEnv(t, "INSIST_DEFAULT_TIMEOUT", "3s")
		testcase.SetEnv(t, "INSIST_DEFAULT_RETRIES", "7")

		c, err := insist.LoadConfig()
		t.Must.NoError(err)
		t.Must.Equal(10*time.Millisecond, c.PollInterval)
		t.Must.Equal(3*time.Second, c.DefaultTimeout)
		t.Must.Equal(7, c.DefaultRetries)

		t.Must.Equal(patience.Wait{
			Options: patience.Options{Backoff: patience.FixedDelay{Delay: 10 * time.Millisecond}},
			Timeout: 3 * time.Second,
		}, c.Wait())
		t.Must.Equal(7, c.Retry().Retries)
	})

	s.Test("unparsable value", func(t *testcase.T) {
		testcase.SetEnv(t, "INSIST_DEFAULT_RETRIES", "many")
		_, err := insist.LoadConfig()
		t.Must.Error(err)
	})

	s.Test("negative value", func(t *testcase.T) {
		testcase.SetEnv(t, "INSIST_DEFAULT_TIMEOUT", "-1s")
		_, err := insist.LoadConfig()
		t.Must.ErrorIs(insist.ErrInvalidConfig, err)

		out := catchPanic(func() { insist.MustLoadConfig() })
		t.Must.ErrorIs(insist.ErrInvalidConfig, out.(error))
	})
}

func TestDefaultWait(t *testing.T) {
	c := insist.DefaultConfig()
	t.Run("wait", func(t *testing.T) {
		if got := insist.DefaultWait(); got.Timeout != c.DefaultTimeout {
			t.Fatalf("unexpected default timeout: %s", got.Timeout)
		}
	})
	t.Run("retry", func(t *testing.T) {
		if got := insist.DefaultRetry(); got.Retries != c.DefaultRetries {
			t.Fatalf("unexpected default retries: %d", got.Retries)
		}
	})
}
