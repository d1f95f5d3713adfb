package handler_test

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/Elly-L/main-shilingi-x-sub001/internal/entities"
	"github.com/Elly-L/main-shilingi-x-sub001/internal/handler"
	mocks "github.com/Elly-L/main-shilingi-x-sub001/internal/handler/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func avatarRequest(t *testing.T, field, contentType string, data []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="me.png"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/profile/avatar", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestProfileHandler_UploadAvatar(t *testing.T) {
	url := "https://project.supabase.co/storage/v1/object/public/avatars/user-1/avatar.png"
	png := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 600)...)
	jpeg := []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00")

	testCases := []struct {
		name         string
		field        string
		contentType  string
		data         []byte
		mockBehavior func(svc *mocks.MockProfileService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:        "success",
			field:       "avatar",
			contentType: "image/png",
			data:        png,
			mockBehavior: func(svc *mocks.MockProfileService) {
				svc.EXPECT().UploadAvatar(mock.Anything, "user-1", "image/png", mock.Anything).
					RunAndReturn(func(_ context.Context, _, _ string, body io.Reader) (string, error) {
						got, err := io.ReadAll(body)
						require.NoError(t, err)
						assert.Equal(t, png, got)
						return url, nil
					}).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"avatar_url":"` + url + `"`,
		},
		{
			name:        "text declared as png",
			field:       "avatar",
			contentType: "image/png",
			data:        []byte("<?php echo 'not an image'; ?>"),
			mockBehavior: func(svc *mocks.MockProfileService) {
				svc.EXPECT().UploadAvatar(mock.Anything, "user-1", "text/plain; charset=utf-8", mock.Anything).
					Return("", entities.ErrUnsupportedMedia).Once()
			},
			wantStatus: http.StatusUnsupportedMediaType,
		},
		{
			name:        "jpeg declared as text",
			field:       "avatar",
			contentType: "text/plain",
			data:        jpeg,
			mockBehavior: func(svc *mocks.MockProfileService) {
				svc.EXPECT().UploadAvatar(mock.Anything, "user-1", "image/jpeg", mock.Anything).
					RunAndReturn(func(_ context.Context, _, _ string, body io.Reader) (string, error) {
						got, err := io.ReadAll(body)
						require.NoError(t, err)
						assert.Equal(t, jpeg, got)
						return url, nil
					}).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:        "missing file",
			field:       "picture",
			contentType: "image/png",
			data:        png,
			wantStatus:  http.StatusBadRequest,
			wantBody:    `"avatar file is required"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockProfileService(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(svc)
			}
			h := handler.NewProfileHandler(discardLogger(), signedIn, svc)

			status, body := serve(t, h, avatarRequest(t, tc.field, tc.contentType, tc.data))

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestProfileHandler_UpdateProfile(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := mocks.NewMockProfileService(t)
		svc.EXPECT().UpdateProfile(mock.Anything, entities.Profile{UserID: "user-1", FullName: "Achieng Otieno", Phone: "0712345678"}).
			Return(entities.Profile{UserID: "user-1", FullName: "Achieng Otieno", Phone: "0712345678"}, nil).Once()
		h := handler.NewProfileHandler(discardLogger(), signedIn, svc)

		req := httptest.NewRequest(http.MethodPut, "/profile", strings.NewReader(`{"full_name":"Achieng Otieno","phone":"0712345678"}`))
		status, body := serve(t, h, req)

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `"full_name":"Achieng Otieno"`)
	})

	t.Run("missing name", func(t *testing.T) {
		svc := mocks.NewMockProfileService(t)
		h := handler.NewProfileHandler(discardLogger(), signedIn, svc)

		req := httptest.NewRequest(http.MethodPut, "/profile", strings.NewReader(`{"phone":"0712345678"}`))
		status, body := serve(t, h, req)

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, body, `"FullName":"required"`)
	})

	t.Run("not found", func(t *testing.T) {
		svc := mocks.NewMockProfileService(t)
		svc.EXPECT().GetProfile(mock.Anything, "user-1").Return(entities.Profile{}, entities.ErrProfileNotFound).Once()
		h := handler.NewProfileHandler(discardLogger(), signedIn, svc)

		status, _ := serve(t, h, httptest.NewRequest(http.MethodGet, "/profile", nil))

		assert.Equal(t, http.StatusNotFound, status)
	})
}
