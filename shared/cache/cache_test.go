package cache_test

import (
	"context"
	"deskbooker/shared/cache"
	"deskbooker/shared/cache/mocks"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type desk struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestRemember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockRedisCache(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		load      func(context.Context) (desk, error)
		want      desk
		wantErr   bool
	}{
		{
			name: "cache hit skips load",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "desk:get:7", gomock.Any()).
					SetArg(2, desk{ID: 7, Name: "Window"}).
					Return(nil)
			},
			load: func(context.Context) (desk, error) {
				t.Fatal("load must not run on a cache hit")

				return desk{}, nil
			},
			want: desk{ID: 7, Name: "Window"},
		},
		{
			name: "cache miss loads and saves",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "desk:get:7", gomock.Any()).
					Return(cache.Nil)
				mockCache.EXPECT().
					Save(gomock.Any(), "desk:get:7", desk{ID: 7, Name: "Window"}, 60).
					Return(nil)
			},
			load: func(context.Context) (desk, error) {
				return desk{ID: 7, Name: "Window"}, nil
			},
			want: desk{ID: 7, Name: "Window"},
		},
		{
			name: "save failure is not returned",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "desk:get:7", gomock.Any()).
					Return(errors.New("connection refused"))
				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("connection refused"))
			},
			load: func(context.Context) (desk, error) {
				return desk{ID: 7}, nil
			},
			want: desk{ID: 7},
		},
		{
			name: "load error is returned and nothing is saved",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "desk:get:7", gomock.Any()).
					Return(cache.Nil)
			},
			load: func(context.Context) (desk, error) {
				return desk{}, errors.New("database error")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			got, err := cache.Remember(context.Background(), mockCache, "desk:get:7", 60, tt.load)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
