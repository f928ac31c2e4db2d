package supabase

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vitrina-api/internal/domain"
	"github.com/jhoicas/vitrina-api/pkg/config"
	"github.com/jhoicas/vitrina-api/pkg/jwt"
)

const (
	testAnon    = "anon-key"
	testService = "service-key"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := NewClient(config.SupabaseConfig{URL: srv.URL + "/", AnonKey: testAnon, ServiceKey: testService}, srv.Client())
	require.NoError(t, err)
	return c
}

func TestNewClient_RequiereURLyAnonKey(t *testing.T) {
	_, err := NewClient(config.SupabaseConfig{AnonKey: "x"}, nil)
	assert.Error(t, err)
	_, err = NewClient(config.SupabaseConfig{URL: "http://x"}, nil)
	assert.Error(t, err)
}

func TestSignUp_ConSesion(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/signup", r.URL.Path)
		assert.Equal(t, testAnon, r.Header.Get("apikey"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@b.com", body["email"])
		assert.Equal(t, "vendedor", body["data"].(map[string]any)["tipo_usuario"])

		_, _ = io.WriteString(w, `{"access_token":"at","token_type":"bearer","expires_in":3600,"refresh_token":"rt",
			"user":{"id":"u-1","email":"a@b.com","role":"authenticated"}}`)
	})

	user, sess, err := NewAuthClient(c).SignUp(context.Background(), "a@b.com", "secret1", map[string]any{"tipo_usuario": "vendedor"})
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, "at", sess.AccessToken)
}

func TestSignUp_SinSesionPorConfirmacionDeEmail(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"id":"u-2","email":"c@d.com","role":"authenticated"}`)
	})

	user, sess, err := NewAuthClient(c).SignUp(context.Background(), "c@d.com", "secret1", nil)
	require.NoError(t, err)
	assert.Nil(t, sess)
	assert.Equal(t, "u-2", user.ID)
}

func TestSignUp_EmailDuplicadoEsEntradaInvalida(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, `{"code":422,"error_code":"user_already_exists","msg":"User already registered"}`)
	})

	_, _, err := NewAuthClient(c).SignUp(context.Background(), "a@b.com", "secret1", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "User already registered", de.Message)
}

func TestSignInWithPassword_CredencialesInvalidas(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":"invalid_grant","error_description":"Invalid login credentials"}`)
	})

	_, _, err := NewAuthClient(c).SignInWithPassword(context.Background(), "a@b.com", "mala")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSignInWithPassword_ErrorDelProveedor(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, _, err := NewAuthClient(c).SignInWithPassword(context.Background(), "a@b.com", "x")
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestVerifyToken_UsaElTokenDelCliente(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/user", r.URL.Path)
		assert.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))
		assert.Equal(t, testAnon, r.Header.Get("apikey"))
		_, _ = io.WriteString(w, `{"id":"u-9","email":"z@z.com"}`)
	})

	id, err := NewAuthClient(c).VerifyToken(context.Background(), "user-token")
	require.NoError(t, err)
	assert.Equal(t, "u-9", id.ID)
}

func TestVerifyToken_Rechazado(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"code":401,"msg":"invalid JWT"}`)
	})

	_, err := NewAuthClient(c).VerifyToken(context.Background(), "x")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestDeleteUser_UsaLlaveDeServicio(t *testing.T) {
	var called bool
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/auth/v1/admin/users/u-1", r.URL.Path)
		assert.Equal(t, "Bearer "+testService, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, NewAuthClient(c).DeleteUser(context.Background(), "u-1"))
	assert.True(t, called)
}

func TestDeleteUser_SinLlaveDeServicio(t *testing.T) {
	c, err := NewClient(config.SupabaseConfig{URL: "http://127.0.0.1:1", AnonKey: testAnon}, nil)
	require.NoError(t, err)
	assert.Error(t, NewAuthClient(c).DeleteUser(context.Background(), "u-1"))
}

func TestJWTVerifier(t *testing.T) {
	tok, err := jwt.Generate("s3cr3t", "u-5", "v@x.com", "supabase", 5)
	require.NoError(t, err)

	id, err := NewJWTVerifier("s3cr3t").VerifyToken(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, "u-5", id.ID)
	assert.Equal(t, "v@x.com", id.Email)

	_, err = NewJWTVerifier("otro").VerifyToken(context.Background(), tok)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestStorage_UploadYRemove(t *testing.T) {
	var uploaded string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			assert.Equal(t, "/storage/v1/object/profiles/avatars/1_a.png", r.URL.Path)
			assert.Equal(t, "image/png", r.Header.Get("Content-Type"))
			assert.Equal(t, "Bearer "+testService, r.Header.Get("Authorization"))
			b, _ := io.ReadAll(r.Body)
			uploaded = string(b)
			_, _ = io.WriteString(w, `{"Key":"profiles/avatars/1_a.png"}`)
		case http.MethodDelete:
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"statusCode":"404","error":"not_found","message":"Object not found"}`)
		}
	})
	st := NewStorageClient(c)

	require.NoError(t, st.Upload(context.Background(), "profiles", "avatars/1_a.png", strings.NewReader("png!"), 4, "image/png"))
	assert.Equal(t, "png!", uploaded)
	assert.NoError(t, st.Remove(context.Background(), "profiles", "avatars/1_a.png"))
}

func TestPublicObjectURL(t *testing.T) {
	assert.Equal(t,
		"https://p.supabase.co/storage/v1/object/public/profiles/avatars/x.png",
		PublicObjectURL("https://p.supabase.co/", "profiles", "/avatars/x.png"))
}

func TestParseError_CuerpoNoJSON(t *testing.T) {
	e := parseError([]byte("bad gateway"), 502)
	assert.Equal(t, "unknown", e.Code)
	assert.Equal(t, "bad gateway", e.Message)
}
