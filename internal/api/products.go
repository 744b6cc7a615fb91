package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
)

// ProductParams holds the fields for creating or updating a marketplace product
type ProductParams struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	CategoryID  int
	Image       *Upload
}

func (p ProductParams) validate() *ClientError {
	if p.Name == "" || p.Description == "" {
		return newValidationError("name and description are required")
	}
	if p.Price <= 0 {
		return newValidationError("price must be greater than zero")
	}
	if p.Stock < 0 {
		return newValidationError("stock cannot be negative")
	}
	return validateImage(p.Image)
}

func (p ProductParams) fields() map[string]string {
	return map[string]string{
		"name":        p.Name,
		"description": p.Description,
		"price":       strconv.FormatFloat(p.Price, 'f', -1, 64),
		"stock":       strconv.Itoa(p.Stock),
		"category_id": strconv.Itoa(p.CategoryID),
	}
}

func (p ProductParams) jsonBody() any {
	return struct {
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		Stock       int     `json:"stock"`
		CategoryID  int     `json:"category_id"`
	}{p.Name, p.Description, p.Price, p.Stock, p.CategoryID}
}

// Products lists all marketplace products
func (c *Client) Products(ctx context.Context) ([]Product, error) {
	var out ProductList
	if err := c.getJSON(ctx, "/products", false, &out); err != nil {
		return nil, err
	}
	return out.Products, nil
}

// GetProduct fetches a single product by id
func (c *Client) GetProduct(ctx context.Context, id int) (*Product, error) {
	var out Product
	if err := c.getJSON(ctx, fmt.Sprintf("/products/%d", id), false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProduct creates a product (admin)
func (c *Client) CreateProduct(ctx context.Context, params ProductParams) (*Product, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	var out Product

	if params.Image != nil {
		form, err := encodeForm(params.fields(), map[string]*Upload{"image": params.Image})
		if err != nil {
			return nil, err
		}
		if err := c.doForm(ctx, http.MethodPost, "/products", form, true, &out); err != nil {
			return nil, err
		}
		return &out, nil
	}

	if err := c.doJSON(ctx, http.MethodPost, "/products", params.jsonBody(), true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProduct updates a product (admin)
func (c *Client) UpdateProduct(ctx context.Context, id int, params ProductParams) (*Product, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/products/%d", id)
	var out Product

	if params.Image != nil {
		form, err := encodeForm(params.fields(), map[string]*Upload{"image": params.Image})
		if err != nil {
			return nil, err
		}
		if err := c.doForm(ctx, http.MethodPut, path, form, true, &out); err != nil {
			return nil, err
		}
		return &out, nil
	}

	if err := c.doJSON(ctx, http.MethodPut, path, params.jsonBody(), true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProduct removes a product (admin)
func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, true, nil)
}
