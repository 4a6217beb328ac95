package controllers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"bukubekas/dto"
	"bukubekas/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type bookRemoverMock struct {
	detachFn func(bookID string) error
	deleteFn func(bookID string) error
	calls    []string
}

func (m *bookRemoverMock) DetachPromoLinks(bookID string) error {
	m.calls = append(m.calls, "detach")
	if m.detachFn != nil {
		return m.detachFn(bookID)
	}
	return nil
}

func (m *bookRemoverMock) DeleteRow(bookID string) error {
	m.calls = append(m.calls, "delete")
	if m.deleteFn != nil {
		return m.deleteFn(bookID)
	}
	return nil
}

func TestRemoveBook(t *testing.T) {
	t.Run("link promo dilepas dulu baru barisnya", func(t *testing.T) {
		mock := &bookRemoverMock{}

		assert.NoError(t, removeBook(mock, "9"))
		assert.Equal(t, []string{"detach", "delete"}, mock.calls)
	})

	t.Run("gagal lepas link tidak menghapus buku", func(t *testing.T) {
		mock := &bookRemoverMock{
			detachFn: func(bookID string) error {
				return assert.AnError
			},
		}

		assert.Error(t, removeBook(mock, "9"))
		assert.Equal(t, []string{"detach"}, mock.calls)
	})
}

func TestRespondBookPageEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// jalur cache dan jalur query harus menghasilkan bentuk response
	// yang sama: envelope dengan pagination
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondBookPage(c, []dto.BookResponse{{ID: 1, Title: "Laskar Pelangi"}}, 0, 10, 1)

	assert.Equal(t, 200, w.Code)

	var body response.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotNil(t, body.Pagination)
	assert.Equal(t, 1, body.Pagination.Total)
	assert.Equal(t, 10, body.Pagination.Limit)
}

func TestRespondDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("nol baris terhapus jadi not found", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		respondDelete(c, &gorm.DB{RowsAffected: 0})
		assert.Equal(t, 404, w.Code)
	})

	t.Run("ada baris terhapus sukses", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		respondDelete(c, &gorm.DB{RowsAffected: 1})
		assert.Equal(t, 200, w.Code)
	})

	t.Run("error query jadi server error", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		respondDelete(c, &gorm.DB{Error: assert.AnError})
		assert.Equal(t, 500, w.Code)
	})
}
