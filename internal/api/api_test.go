package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"blogapi/internal/storage/postgres"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer backs the full router with an in-memory SQLite database, so
// requests run through the real storage layer including its constraints.
func newTestServer(t *testing.T) (*gin.Engine, func()) {
	oldDB := postgres.GetDB()

	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.Exec("PRAGMA foreign_keys = ON")
	db.LogMode(false)
	require.NoError(t, postgres.Migrate(db))
	postgres.InitDBWithConnection(db)

	h := &Handler{
		Users:     postgres.NewUserPostgresStorage(),
		Posts:     postgres.NewPostPostgresStorage(),
		Comments:  postgres.NewCommentPostgresStorage(),
		Likes:     postgres.NewLikePostgresStorage(),
		JWTSecret: testSecret,
	}
	router := NewRouter(testConfig(), h)

	return router, func() {
		postgres.InitDBWithConnection(oldDB)
		db.Close()
	}
}

func signupBody(username string) string {
	return fmt.Sprintf(
		`{"username":%q,"email":"%s@example.com","first_name":"T","last_name":"U","password":"pass12345","password2":"pass12345"}`,
		username, username,
	)
}

// signupAndLogin registers a user and returns a bearer token for them.
func signupAndLogin(t *testing.T, router *gin.Engine, username string) string {
	w := do(router, "POST", "/accounts/create", "", signupBody(username))
	require.Equal(t, http.StatusCreated, w.Code)

	body := fmt.Sprintf(`{"username":%q,"password":"pass12345"}`, username)
	w = do(router, "POST", "/accounts/login", "", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return "Bearer " + resp.Token
}

// createPost makes a post as the token's user and returns its ID.
func createPost(t *testing.T, router *gin.Engine, token, title string, published bool) uint {
	body := fmt.Sprintf(
		`{"title":%q,"content":"content","tags":["test"],"is_published":%t}`,
		title, published,
	)
	w := do(router, "POST", "/posts", token, body)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.ID
}

func TestSignup(t *testing.T) {
	t.Run("Created user excludes password fields", func(t *testing.T) {
		router, cleanup := newTestServer(t)
		defer cleanup()

		w := do(router, "POST", "/accounts/create", "", signupBody("alice"))
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"username":"alice"`)
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("Repeating the signup fails with 400", func(t *testing.T) {
		router, cleanup := newTestServer(t)
		defer cleanup()

		w := do(router, "POST", "/accounts/create", "", signupBody("alice"))
		require.Equal(t, http.StatusCreated, w.Code)

		w = do(router, "POST", "/accounts/create", "", signupBody("alice"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "already exists")
	})

	t.Run("Password mismatch fails with 400", func(t *testing.T) {
		router, cleanup := newTestServer(t)
		defer cleanup()

		body := `{"username":"bob","email":"bob@example.com","password":"one-pass1","password2":"other-pass2"}`
		w := do(router, "POST", "/accounts/create", "", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "passwords do not match")
	})
}

func TestUnauthenticatedMutationsAreRejected(t *testing.T) {
	router, cleanup := newTestServer(t)
	defer cleanup()

	token := signupAndLogin(t, router, "alice")
	postID := createPost(t, router, token, "target", true)

	cases := []struct {
		method, path, body string
	}{
		{"POST", "/posts", `{"title":"t","content":"c","tags":["x"]}`},
		{"PUT", fmt.Sprintf("/posts/%d", postID), `{"title":"t","content":"c","tags":["x"]}`},
		{"DELETE", fmt.Sprintf("/posts/%d", postID), ""},
		{"POST", fmt.Sprintf("/posts/%d/comments", postID), `{"content":"hi"}`},
		{"POST", fmt.Sprintf("/posts/%d/like", postID), ""},
		{"GET", "/accounts/me", ""},
	}

	for _, tc := range cases {
		w := do(router, tc.method, tc.path, "", tc.body)
		assert.Equalf(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)
	}
}

func TestPostEndpoints(t *testing.T) {
	t.Run("Listing hides drafts and carries comment counts", func(t *testing.T) {
		router, cleanup := newTestServer(t)
		defer cleanup()

		alice := signupAndLogin(t, router, "alice")
		bob := signupAndLogin(t, router, "bob")

		publicID := createPost(t, router, alice, "public", true)
		createPost(t, router, alice, "draft", false)

		w := do(router, "POST", fmt.Sprintf("/posts/%d/comments", publicID), bob, `{"content":"nice"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		w = do(router, "GET", "/posts", "", "")
		require.Equal(t, http.StatusOK, w.Code)

		var posts []struct {
			Title        string `json:"title"`
			Author       string `json:"author"`
			CommentCount int    `json:"comment_count"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
		require.Len(t, posts, 1)
		assert.Equal(t, "public", posts[0].Title)
		assert.Equal(t, "alice", posts[0].Author)
		assert.Equal(t, 1, posts[0].CommentCount)

		// The author's own listing view hides drafts too; drafts live on the
		// dashboard.
		w = do(router, "GET", "/posts", alice, "")
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
		assert.Len(t, posts, 1)
	})

	t.Run("Draft retrieval is author-only", func(t *testing.T) {
		router, cleanup := newTestServer(t)
		defer cleanup()

		alice := signupAndLogin(t, router, "alice")
		bob := signupAndLogin(t, router, "bob")
		draftID := createPost(t, router, alice, "draft", false)

		w := do(router, "GET", fmt.Sprintf("/posts/%d", draftID), "", "")
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = do(router, "GET", fmt.Sprintf("/posts/%d", draftID), bob, "")
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = do(router, "GET", fmt.Sprintf("/posts/%d", draftID), alice, "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Create requires title, content and at least one tag", func(t *testing.T) {
		router, cleanup := newTestServer(t)
		defer cleanup()

		alice := signupAndLogin(t, router, "alice")

		w := do(router, "POST", "/posts", alice, `{"title":"t","content":"c","tags":[]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = do(router, "POST", "/posts", alice, `{"content":"c","tags":["x"]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Update and delete are author-only and hide existence", func(t *testing.T) {
		router, cleanup := newTestServer(t)
		defer cleanup()

		alice := signupAndLogin(t, router, "alice")
		bob := signupAndLogin(t, router, "bob")
		postID := createPost(t, router, alice, "mine", true)

		body := `{"title":"stolen","content":"c","tags":["x"]}`
		w := do(router, "PUT", fmt.Sprintf("/posts/%d", postID), bob, body)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = do(router, "DELETE", fmt.Sprintf("/posts/%d", postID), bob, "")
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = do(router, "PUT", fmt.Sprintf("/posts/%d", postID), alice, body)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"title":"stolen"`)

		w = do(router, "DELETE", fmt.Sprintf("/posts/%d", postID), alice, "")
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = do(router, "GET", fmt.Sprintf("/posts/%d", postID), alice, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCommentEndpoints(t *testing.T) {
	t.Run("Commenting on a draft fails for every actor", func(t *testing.T) {
		router, cleanup := newTestServer(t)
		defer cleanup()

		alice := signupAndLogin(t, router, "alice")
		bob := signupAndLogin(t, router, "bob")
		draftID := createPost(t, router, alice, "draft", false)

		w := do(router, "POST", fmt.Sprintf("/posts/%d/comments", draftID), bob, `{"content":"hi"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = do(router, "POST", fmt.Sprintf("/posts/%d/comments", draftID), alice, `{"content":"hi"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Comment mutation is owner-only", func(t *testing.T) {
		router, cleanup := newTestServer(t)
		defer cleanup()

		alice := signupAndLogin(t, router, "alice")
		bob := signupAndLogin(t, router, "bob")
		postID := createPost(t, router, alice, "open", true)

		w := do(router, "POST", fmt.Sprintf("/posts/%d/comments", postID), bob, `{"content":"bob's"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		var created struct {
			ID uint `json:"id"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		commentPath := fmt.Sprintf("/posts/%d/comments/%d", postID, created.ID)

		// The post's author does not own bob's comment.
		w = do(router, "PUT", commentPath, alice, `{"content":"edited"}`)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = do(router, "DELETE", commentPath, alice, "")
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = do(router, "PUT", commentPath, bob, `{"content":"edited"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"content":"edited"`)

		w = do(router, "DELETE", commentPath, bob, "")
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Comment under the wrong post reports not-found", func(t *testing.T) {
		router, cleanup := newTestServer(t)
		defer cleanup()

		alice := signupAndLogin(t, router, "alice")
		postID := createPost(t, router, alice, "one", true)
		otherID := createPost(t, router, alice, "two", true)

		w := do(router, "POST", fmt.Sprintf("/posts/%d/comments", postID), alice, `{"content":"hi"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		var created struct {
			ID uint `json:"id"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

		w = do(router, "GET", fmt.Sprintf("/posts/%d/comments/%d", otherID, created.ID), "", "")
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = do(router, "GET", fmt.Sprintf("/posts/%d/comments/%d", postID, created.ID), "", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestLikeToggleRoundTrip(t *testing.T) {
	router, cleanup := newTestServer(t)
	defer cleanup()

	alice := signupAndLogin(t, router, "alice")
	bob := signupAndLogin(t, router, "bob")
	postID := createPost(t, router, alice, "likable", true)
	likePath := fmt.Sprintf("/posts/%d/like", postID)

	w := do(router, "POST", likePath, bob, "")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"message": "Like added"}`, w.Body.String())

	w = do(router, "POST", likePath, bob, "")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"message": "Like removed"}`, w.Body.String())

	t.Run("Draft posts cannot be liked", func(t *testing.T) {
		draftID := createPost(t, router, alice, "draft", false)
		w := do(router, "POST", fmt.Sprintf("/posts/%d/like", draftID), bob, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDashboard(t *testing.T) {
	router, cleanup := newTestServer(t)
	defer cleanup()

	alice := signupAndLogin(t, router, "alice")
	bob := signupAndLogin(t, router, "bob")

	publicID := createPost(t, router, alice, "public", true)
	createPost(t, router, alice, "draft", false)

	w := do(router, "POST", fmt.Sprintf("/posts/%d/comments", publicID), bob, `{"content":"bob says hi"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(router, "GET", "/accounts/me", alice, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Posts    []struct {
			Title     string `json:"title"`
			Published bool   `json:"is_published"`
		} `json:"posts"`
		Comments []struct {
			Content string `json:"content"`
		} `json:"comments"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "alice@example.com", resp.Email)
	// Both the published post and the draft belong on the owner's dashboard.
	assert.Len(t, resp.Posts, 2)
	assert.Empty(t, resp.Comments)

	// Bob's dashboard carries his comment and no posts.
	w = do(router, "GET", "/accounts/me", bob, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Posts)
	require.Len(t, resp.Comments, 1)
	assert.Equal(t, "bob says hi", resp.Comments[0].Content)
}
