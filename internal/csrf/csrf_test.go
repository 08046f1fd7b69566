package csrf

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postForm(token string, cookie string) *http.Request {
	form := url.Values{}
	if token != "" {
		form.Set(FormFieldName, token)
	}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: cookie})
	}
	return req
}

func TestGenerateToken_Unique(t *testing.T) {
	a, err := GenerateToken()
	require.NoError(t, err)
	b, err := GenerateToken()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.Len(t, a, 43)
}

func TestValid(t *testing.T) {
	tests := []struct {
		name   string
		form   string
		cookie string
		want   bool
	}{
		{"matching", "abc", "abc", true},
		{"mismatch", "abc", "xyz", false},
		{"missing cookie", "abc", "", false},
		{"missing form", "", "abc", false},
		{"both missing", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Valid(postForm(tt.form, tt.cookie)))
		})
	}
}

func TestEnsure_ReusesExistingCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "existing"})
	rec := httptest.NewRecorder()

	token, err := Ensure(rec, req, false)
	require.NoError(t, err)

	assert.Equal(t, "existing", token)
	assert.Empty(t, rec.Result().Cookies())
}

func TestEnsure_IssuesCookie(t *testing.T) {
	rec := httptest.NewRecorder()

	token, err := Ensure(rec, httptest.NewRequest(http.MethodGet, "/login", nil), true)
	require.NoError(t, err)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, token, cookies[0].Value)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookies[0].SameSite)
}
