package controller

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/project/bookshelf/internal/controller/mocks"

	"go.uber.org/mock/gomock"
)

var errInternal = errors.New("internal error")

type serviceTestEnv struct {
	books    *mocks.MockBooksUseCase
	reviews  *mocks.MockReviewsUseCase
	insights *mocks.MockInsightsUseCase
	router   http.Handler
}

func initServiceTest(t *testing.T) serviceTestEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	booksUseCase := mocks.NewMockBooksUseCase(ctrl)
	reviewsUseCase := mocks.NewMockReviewsUseCase(ctrl)
	insightsUseCase := mocks.NewMockInsightsUseCase(ctrl)
	logger, err := zap.NewProduction()
	if err != nil {
		t.Fatal("assertion error: " + err.Error())
	}
	service := New(logger, booksUseCase, reviewsUseCase, insightsUseCase)
	return serviceTestEnv{
		books:    booksUseCase,
		reviews:  reviewsUseCase,
		insights: insightsUseCase,
		router:   service.Router(),
	}
}

func (env serviceTestEnv) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatal("assertion error: " + err.Error())
		}
		reader = bytes.NewReader(raw)
	}

	request := httptest.NewRequest(method, target, reader)
	recorder := httptest.NewRecorder()
	env.router.ServeHTTP(recorder, request)
	return recorder
}

func decodeBody[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()

	var decoded T
	if err := json.NewDecoder(recorder.Body).Decode(&decoded); err != nil {
		t.Fatal("assertion error: " + err.Error())
	}
	return decoded
}
