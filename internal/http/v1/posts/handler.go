// Package posts exposes portfolio post management for creators: uploading a
// new post, listing their own, and deleting one.
package posts

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/kalakararena/api/internal/platform/auth"
	applog "github.com/kalakararena/api/internal/platform/logging"
	"github.com/kalakararena/api/internal/platform/storage"
	postsvc "github.com/kalakararena/api/internal/service/post"
)

// now is swapped in tests to pin object names.
var now = time.Now

// Register wires post routes into the provided API router. postsBucket is
// where post images land, one object per post.
func Register(api huma.API, svc postsvc.Service, store storage.Store, postsBucket string) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-post",
		Method:        http.MethodPost,
		Path:          "/posts",
		Summary:       "Add a portfolio post",
		Description:   "Uploads the image and records the post. When recording fails the uploaded image is removed again so no orphaned objects accumulate.",
		Tags:          []string{"Posts"},
		DefaultStatus: http.StatusCreated,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
		user := auth.UserFromContext(ctx)
		if !user.IsCreator() {
			return nil, huma.Error403Forbidden("only creators can add posts")
		}

		form := input.RawBody.Data()
		contentType, ok := storage.ImageContentType(form.Image.Filename)
		if !ok {
			return nil, huma.Error422UnprocessableEntity("unsupported image type")
		}
		if strings.TrimSpace(form.Title) == "" {
			return nil, huma.Error422UnprocessableEntity("title must not be empty")
		}

		objectPath := fmt.Sprintf("%s/%d.%s", user.UID, now().UnixMilli(), storage.Ext(form.Image.Filename))
		imageURL, err := store.Upload(ctx, postsBucket, objectPath, contentType, form.Image)
		if err != nil {
			applog.LogError(ctx, "Post image upload failed", err)
			return nil, huma.Error500InternalServerError("failed to store image")
		}

		created, err := svc.Create(ctx, user.UID, postsvc.CreateParams{
			Title:       strings.TrimSpace(form.Title),
			Description: strings.TrimSpace(form.Description),
			ImageURL:    imageURL,
			Category:    form.Category,
		})
		if err != nil {
			// The image is already in the bucket; take it back out so a
			// failed insert leaves nothing behind.
			if delErr := store.Delete(ctx, postsBucket, objectPath); delErr != nil &&
				!errors.Is(delErr, storage.ErrObjectNotFound) {
				applog.LogError(ctx, "Orphaned post image cleanup failed", delErr)
			}
			return nil, huma.Error500InternalServerError("failed to create post")
		}
		return &CreateOutput{Body: toHTTPPost(created)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-own-posts",
		Method:      http.MethodGet,
		Path:        "/posts",
		Summary:     "List own posts",
		Description: "Returns the authenticated creator's posts, newest first.",
		Tags:        []string{"Posts"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, _ *ListInput) (*ListOutput, error) {
		user := auth.UserFromContext(ctx)

		rows, err := svc.ListByCreator(ctx, user.UID)
		if err != nil {
			return nil, huma.Error500InternalServerError("internal error")
		}
		out := make([]Post, 0, len(rows))
		for _, p := range rows {
			out = append(out, toHTTPPost(p))
		}
		return &ListOutput{Body: ListData{Posts: out, Total: len(out)}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-post",
		Method:        http.MethodDelete,
		Path:          "/posts/{id}",
		Summary:       "Delete a post",
		Description:   "Removes the post and then its stored image. A failed image removal is logged but does not undo the delete.",
		Tags:          []string{"Posts"},
		DefaultStatus: http.StatusNoContent,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *DeleteInput) (*struct{}, error) {
		user := auth.UserFromContext(ctx)

		deleted, err := svc.Delete(ctx, user.UID, input.ID)
		if err != nil {
			switch {
			case errors.Is(err, postsvc.ErrNotFound):
				return nil, huma.Error404NotFound("post not found")
			case errors.Is(err, postsvc.ErrForbidden):
				return nil, huma.Error403Forbidden("post belongs to another creator")
			default:
				return nil, huma.Error500InternalServerError("internal error")
			}
		}

		if objectPath, ok := objectPathFromURL(store, postsBucket, deleted.ImageURL); ok {
			if err := store.Delete(ctx, postsBucket, objectPath); err != nil &&
				!errors.Is(err, storage.ErrObjectNotFound) {
				applog.LogError(ctx, "Post image removal failed", err)
			}
		}
		return nil, nil
	})
}

// objectPathFromURL recovers the bucket-relative path from a stored public
// URL. URLs pointing elsewhere are left alone.
func objectPathFromURL(store storage.Store, bucket, imageURL string) (string, bool) {
	base := store.PublicURL(bucket, "")
	if base == "" || !strings.HasPrefix(imageURL, base) {
		return "", false
	}
	path := strings.TrimPrefix(imageURL, base)
	return path, path != ""
}
