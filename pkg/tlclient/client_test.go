package tlclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamkit-io/teamleader/pkg/teamleader"
	"github.com/teamkit-io/teamleader/pkg/tlclient"
)

func TestNew_NilConfig(t *testing.T) {
	_, err := tlclient.New(nil)
	require.ErrorIs(t, err, teamleader.ErrConfigRequired)
}

func TestNew_MissingCredentials(t *testing.T) {
	_, err := tlclient.New(&teamleader.Config{Group: "group-only"})
	require.ErrorIs(t, err, teamleader.ErrCredentialsRequired)

	_, err = tlclient.NewWithCredentials("", "")
	require.ErrorIs(t, err, teamleader.ErrCredentialsRequired)
}

func TestNew_ReturnsWorkingClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/getTags.php", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "g", r.PostForm.Get("api_group"))
		assert.Equal(t, "s", r.PostForm.Get("api_secret"))

		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client, err := tlclient.New(&teamleader.Config{
		Group:   "g",
		Secret:  "s",
		BaseURL: server.URL + "/",
	})
	require.NoError(t, err)

	// The trailing slash on BaseURL is normalized away.
	_, err = client.Directory().Tags(context.Background())
	require.NoError(t, err)
}

func TestNew_DoesNotMutateCallerConfig(t *testing.T) {
	config := &teamleader.Config{
		Group:   "g",
		Secret:  "s",
		BaseURL: "example.com/",
	}

	_, err := tlclient.New(config)
	require.NoError(t, err)
	assert.Equal(t, "example.com/", config.BaseURL)
}
