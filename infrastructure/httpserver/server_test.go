package httpserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/choace0427/brightspeed-ai-backend/contract"
	"github.com/choace0427/brightspeed-ai-backend/domain/extraction"
	"github.com/choace0427/brightspeed-ai-backend/domain/identity"
	apperrors "github.com/choace0427/brightspeed-ai-backend/errors"
	"github.com/choace0427/brightspeed-ai-backend/mocks"
)

type fixture struct {
	uploads  *mocks.MockIUploadService
	analyzer *mocks.MockIAnalyzerService
	identity *mocks.MockIIdentityService
	handler  http.Handler
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		uploads:  mocks.NewMockIUploadService(ctrl),
		analyzer: mocks.NewMockIAnalyzerService(ctrl),
		identity: mocks.NewMockIIdentityService(ctrl),
	}
	server := New("127.0.0.1:0", 50<<20, f.uploads, f.analyzer, f.identity, slog.Default())
	f.handler = server.Handler()
	return f
}

func (f *fixture) do(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	recorder := httptest.NewRecorder()
	f.handler.ServeHTTP(recorder, req)

	body := map[string]any{}
	if recorder.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	}
	return recorder, body
}

func multipartBody(t *testing.T, field string, files map[string][]byte, values map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	for name, data := range files {
		part, err := writer.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	for name, value := range values {
		require.NoError(t, writer.WriteField(name, value))
	}
	require.NoError(t, writer.Close())
	return buf, writer.FormDataContentType()
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func TestServer_Upload(t *testing.T) {
	req := require.New(t)

	t.Run("Should stage the posted files", func(t *testing.T) {
		f := newFixture(t)
		staged := []contract.DocumentKeys{{FileName: "contract.pdf", PageKeys: []string{"splitted-pages/d/page_1.pdf"}}}
		f.uploads.EXPECT().
			Stage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, uploads []contract.Upload) ([]contract.DocumentKeys, error) {
				req.Len(uploads, 1)
				req.Equal("contract.pdf", uploads[0].FileName)
				req.Equal([]byte("%PDF-fake"), uploads[0].Data)
				return staged, nil
			})

		body, contentType := multipartBody(t, "files", map[string][]byte{"contract.pdf": []byte("%PDF-fake")}, nil)
		request := httptest.NewRequest(http.MethodPost, "/api/upload", body)
		request.Header.Set("Content-Type", contentType)

		recorder, response := f.do(t, request)
		req.Equal(http.StatusOK, recorder.Code)
		req.Equal("Files uploaded and split successfully", response["message"])
		req.Len(response["allKeys"], 1)
	})

	t.Run("Should answer 400 when no file is posted", func(t *testing.T) {
		f := newFixture(t)
		body, contentType := multipartBody(t, "files", nil, map[string]string{"note": "empty"})
		request := httptest.NewRequest(http.MethodPost, "/api/upload", body)
		request.Header.Set("Content-Type", contentType)

		recorder, _ := f.do(t, request)
		req.Equal(http.StatusBadRequest, recorder.Code)
	})

	t.Run("Should answer 400 on an unsupported media type", func(t *testing.T) {
		f := newFixture(t)
		f.uploads.EXPECT().
			Stage(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("%w: notes.txt is text/plain", apperrors.ErrUnsupportedMediaType))

		body, contentType := multipartBody(t, "files", map[string][]byte{"notes.txt": []byte("hello")}, nil)
		request := httptest.NewRequest(http.MethodPost, "/api/upload", body)
		request.Header.Set("Content-Type", contentType)

		recorder, response := f.do(t, request)
		req.Equal(http.StatusBadRequest, recorder.Code)
		req.Contains(response["error"], "notes.txt")
	})
}

func TestServer_Analyze(t *testing.T) {
	req := require.New(t)

	t.Run("Should answer 200 with per-document results", func(t *testing.T) {
		f := newFixture(t)
		request := contract.AnalyzeRequest{
			Documents:      []contract.DocumentKeys{{FileName: "a.pdf", PageKeys: []string{"k1"}}},
			AdapterID:      "adapter-1",
			AdapterVersion: "1",
		}
		f.analyzer.EXPECT().
			ProcessBatch(gomock.Any(), gomock.Any()).
			Return([]contract.DocumentResult{
				{FileName: "a.pdf", Fields: []extraction.CandidateAnswer{{Alias: "SURNAME", AnswerText: "SMITH", Confidence: 90}}},
			})

		httpReq := httptest.NewRequest(http.MethodPost, "/api/analyze", jsonBody(t, request))
		recorder, response := f.do(t, httpReq)
		req.Equal(http.StatusOK, recorder.Code)
		req.Len(response["results"], 1)
	})

	t.Run("Should reject an invalid body without calling the analyzer", func(t *testing.T) {
		f := newFixture(t)
		httpReq := httptest.NewRequest(http.MethodPost, "/api/analyze",
			strings.NewReader(`{"documents": [], "adapterId": "a", "adapterVersion": "1"}`))
		recorder, _ := f.do(t, httpReq)
		req.Equal(http.StatusBadRequest, recorder.Code)
	})

	t.Run("Should reject malformed JSON", func(t *testing.T) {
		f := newFixture(t)
		httpReq := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader("{not json"))
		recorder, _ := f.do(t, httpReq)
		req.Equal(http.StatusBadRequest, recorder.Code)
	})
}

func TestServer_IdentityCheck(t *testing.T) {
	req := require.New(t)
	photo := []byte{0xFF, 0xD8, 0xFF, 0xE0}

	t.Run("Should check the posted identity card", func(t *testing.T) {
		f := newFixture(t)
		f.identity.EXPECT().
			Check(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, request contract.IdentityCheckRequest) (identity.Report, error) {
				req.Equal("passport.jpg", request.Upload.FileName)
				req.Equal("Marie", request.FirstName)
				req.Equal("Curie", request.LastName)
				req.Equal("1967-11-07", request.DateOfBirth)
				return identity.Report{Status: identity.StatusSuccess, Mismatches: []identity.Mismatch{}}, nil
			})

		body, contentType := multipartBody(t, "id_card",
			map[string][]byte{"passport.jpg": photo},
			map[string]string{"first_name": "Marie", "last_name": "Curie", "birth": "1967-11-07"})
		request := httptest.NewRequest(http.MethodPost, "/api/idcard", body)
		request.Header.Set("Content-Type", contentType)

		recorder, response := f.do(t, request)
		req.Equal(http.StatusOK, recorder.Code)
		req.Equal(identity.StatusSuccess, response["status"])
	})

	t.Run("Should answer 422 when the document lacks a required field", func(t *testing.T) {
		f := newFixture(t)
		f.identity.EXPECT().
			Check(gomock.Any(), gomock.Any()).
			Return(identity.Report{}, apperrors.MissingField(extraction.AliasExpireDate))

		body, contentType := multipartBody(t, "id_card",
			map[string][]byte{"passport.jpg": photo},
			map[string]string{"first_name": "Marie", "last_name": "Curie", "birth": "1967-11-07"})
		request := httptest.NewRequest(http.MethodPost, "/api/idcard", body)
		request.Header.Set("Content-Type", contentType)

		recorder, response := f.do(t, request)
		req.Equal(http.StatusUnprocessableEntity, recorder.Code)
		req.Contains(response["error"], extraction.AliasExpireDate)
	})

	t.Run("Should answer 400 without an id_card file", func(t *testing.T) {
		f := newFixture(t)
		body, contentType := multipartBody(t, "other", map[string][]byte{"x.jpg": photo}, nil)
		request := httptest.NewRequest(http.MethodPost, "/api/idcard", body)
		request.Header.Set("Content-Type", contentType)

		recorder, _ := f.do(t, request)
		req.Equal(http.StatusBadRequest, recorder.Code)
	})
}

func TestServer_Cleanup(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.uploads.EXPECT().Cleanup(gomock.Any()).Return(nil)

	recorder, response := f.do(t, httptest.NewRequest(http.MethodDelete, "/api/delete", nil))
	req.Equal(http.StatusOK, recorder.Code)
	req.Equal("All files deleted successfully", response["message"])
}

func TestServer_Paystub(t *testing.T) {
	req := require.New(t)

	t.Run("Should hand out a presigned URL", func(t *testing.T) {
		f := newFixture(t)
		f.uploads.EXPECT().
			PresignUpload(gomock.Any(), "paystubs/march.pdf").
			Return("https://bucket.example/paystubs/march.pdf?signed", nil)

		request := httptest.NewRequest(http.MethodPost, "/paystub/presignedUrl",
			jsonBody(t, contract.PresignRequest{Key: "paystubs/march.pdf"}))
		recorder, response := f.do(t, request)
		req.Equal(http.StatusOK, recorder.Code)
		req.Equal("paystubs/march.pdf", response["key"])
		req.Contains(response["signedUrl"], "signed")
	})

	t.Run("Should reject a presign request without a key", func(t *testing.T) {
		f := newFixture(t)
		request := httptest.NewRequest(http.MethodPost, "/paystub/presignedUrl", strings.NewReader(`{}`))
		recorder, _ := f.do(t, request)
		req.Equal(http.StatusBadRequest, recorder.Code)
	})

	t.Run("Should analyze staged finance documents", func(t *testing.T) {
		f := newFixture(t)
		f.analyzer.EXPECT().
			AnalyzeFinanceAgreement(gomock.Any(), []string{"paystubs/march.pdf"}).
			Return([]extraction.CandidateAnswer{{Alias: "customerName", AnswerText: "M. DUPONT", Confidence: 88}}, nil)

		request := httptest.NewRequest(http.MethodPost, "/paystub/analyze",
			jsonBody(t, contract.FinanceAnalyzeRequest{Keys: []string{"paystubs/march.pdf"}}))
		recorder, response := f.do(t, request)
		req.Equal(http.StatusOK, recorder.Code)
		req.Len(response["fields"], 1)
	})

	t.Run("Should answer 500 when the finance analysis fails", func(t *testing.T) {
		f := newFixture(t)
		f.analyzer.EXPECT().
			AnalyzeFinanceAgreement(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("backend unreachable"))

		request := httptest.NewRequest(http.MethodPost, "/paystub/analyze",
			jsonBody(t, contract.FinanceAnalyzeRequest{Keys: []string{"k"}}))
		recorder, _ := f.do(t, request)
		req.Equal(http.StatusInternalServerError, recorder.Code)
	})
}

func TestServer_Health(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	recorder, response := f.do(t, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	req.Equal(http.StatusOK, recorder.Code)
	req.Equal("ok", response["status"])
}
