package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) Response {
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHTTPStatus(t *testing.T) {
	cases := map[int]int{
		0:                               http.StatusOK,
		apperrors.ErrCodeBookNotFound:   http.StatusNotFound,
		apperrors.ErrCodeNotFound:       http.StatusNotFound,
		apperrors.ErrCodeInvalidParams:  http.StatusBadRequest,
		apperrors.ErrCodeBindError:      http.StatusBadRequest,
		apperrors.ErrCodeDuplicateEntry: http.StatusConflict,
		apperrors.ErrCodeDatabaseError:  http.StatusInternalServerError,
		apperrors.ErrCodeCreateNoEffect: http.StatusInternalServerError,
		apperrors.ErrCodeBusinessError:  http.StatusBadRequest,
	}
	for code, want := range cases {
		assert.Equal(t, want, HTTPStatus(code), "code=%d", code)
	}
}

func TestSuccessAndCreated(t *testing.T) {
	t.Run("200带数据", func(t *testing.T) {
		c, w := newContext()
		Success(c, gin.H{"id": 1})

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decode(t, w)
		assert.Equal(t, 0, resp.Code)
		assert.Equal(t, "success", resp.Message)
	})

	t.Run("201带数据", func(t *testing.T) {
		c, w := newContext()
		Created(c, gin.H{"id": 2})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 0, decode(t, w).Code)
	})
}

func TestError(t *testing.T) {
	t.Run("数据库错误不泄露内部信息", func(t *testing.T) {
		c, w := newContext()
		Error(c, apperrors.Wrap(errors.New("dial tcp: connection refused"), "查询图书失败"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		resp := decode(t, w)
		assert.Equal(t, apperrors.ErrCodeDatabaseError, resp.Code)
		assert.Equal(t, "查询图书失败", resp.Message)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})

	t.Run("普通error按内部错误处理", func(t *testing.T) {
		c, w := newContext()
		Error(c, errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, apperrors.ErrCodeInternal, decode(t, w).Code)
	})

	t.Run("资源不存在", func(t *testing.T) {
		c, w := newContext()
		NotFound(c, apperrors.ErrOrderNotFound)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, apperrors.ErrCodeOrderNotFound, decode(t, w).Code)
	})

	t.Run("参数错误", func(t *testing.T) {
		c, w := newContext()
		ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "无效的ID")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "无效的ID", decode(t, w).Message)
	})
}
