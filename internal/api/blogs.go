package api

import (
	"context"
	"fmt"
	"net/http"
)

// BlogParams holds the fields for creating or updating a blog post. Image and
// video are optional; when either is present the request is multipart.
type BlogParams struct {
	Title   string
	Content string
	Author  string
	Image   *Upload
	Video   *Upload
}

func (p BlogParams) validate() *ClientError {
	if p.Title == "" || p.Content == "" {
		return newValidationError("title and content are required")
	}
	if err := validateImage(p.Image); err != nil {
		return err
	}
	return validateVideo(p.Video)
}

func (p BlogParams) fields() map[string]string {
	return map[string]string{
		"title":   p.Title,
		"content": p.Content,
		"author":  p.Author,
	}
}

// BlogCommentParams holds the fields of a public comment submission
type BlogCommentParams struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Blogs lists all blog posts
func (c *Client) Blogs(ctx context.Context) ([]BlogPost, error) {
	var out BlogList
	if err := c.getJSON(ctx, "/blogs", false, &out); err != nil {
		return nil, err
	}
	return out.Blogs, nil
}

// GetBlog fetches a single blog post by id
func (c *Client) GetBlog(ctx context.Context, id int) (*BlogPost, error) {
	var out BlogPost
	if err := c.getJSON(ctx, fmt.Sprintf("/blogs/%d", id), false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateBlog publishes a blog post (admin)
func (c *Client) CreateBlog(ctx context.Context, params BlogParams) (*BlogPost, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	form, err := encodeForm(params.fields(), map[string]*Upload{
		"image": params.Image,
		"video": params.Video,
	})
	if err != nil {
		return nil, err
	}

	var out BlogPost
	if err := c.doForm(ctx, http.MethodPost, "/blogs", form, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateBlog updates a blog post (admin)
func (c *Client) UpdateBlog(ctx context.Context, id int, params BlogParams) (*BlogPost, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	form, err := encodeForm(params.fields(), map[string]*Upload{
		"image": params.Image,
		"video": params.Video,
	})
	if err != nil {
		return nil, err
	}

	var out BlogPost
	if err := c.doForm(ctx, http.MethodPut, fmt.Sprintf("/blogs/%d", id), form, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteBlog removes a blog post (admin)
func (c *Client) DeleteBlog(ctx context.Context, id int) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/blogs/%d", id), nil, true, nil)
}

// BlogComments lists the public comments of a blog post
func (c *Client) BlogComments(ctx context.Context, blogID int) ([]BlogComment, error) {
	var out BlogCommentList
	if err := c.getJSON(ctx, fmt.Sprintf("/blogs/%d/comments", blogID), false, &out); err != nil {
		return nil, err
	}
	return out.Comments, nil
}

// AddBlogComment submits a public comment on a blog post
func (c *Client) AddBlogComment(ctx context.Context, blogID int, params BlogCommentParams) (*BlogComment, error) {
	if params.Name == "" || params.Content == "" {
		return nil, newValidationError("name and content are required")
	}

	var out BlogComment
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/blogs/%d/comments", blogID), params, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteBlogComment removes a comment (admin)
func (c *Client) DeleteBlogComment(ctx context.Context, blogID int, commentID int) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/blogs/%d/comments/%d", blogID, commentID), nil, true, nil)
}
