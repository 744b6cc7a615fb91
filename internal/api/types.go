package api

// Entity and response types for the PRF API. List endpoints wrap their
// collection under a resource-name key (e.g. {"projects": [...]}) - the
// wrapper types below make the unwrapping explicit so callers can't read the
// wrong sub-key. Create/get endpoints return the bare entity.

// User represents a registered account. Role is "user" or "admin" and is the
// only authorization signal the UI has.
type User struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// IsAdmin reports whether the account has the admin role
func (u User) IsAdmin() bool {
	return u.Role == "admin"
}

// Project is a promoted business project. The three price fields are only
// meaningful when IsFree is false.
type Project struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	IsFree       bool    `json:"is_free"`
	BasicPrice   float64 `json:"basic_price"`
	ClassicPrice float64 `json:"classic_price"`
	PremiumPrice float64 `json:"premium_price"`
	CategoryID   int     `json:"category_id"`
	Image        string  `json:"image,omitempty"`
	CreatedAt    string  `json:"created_at,omitempty"`
	UpdatedAt    string  `json:"updated_at,omitempty"`
}

// Product is a marketplace item
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	CategoryID  int     `json:"category_id,omitempty"`
	Image       string  `json:"image,omitempty"`
	CreatedAt   string  `json:"created_at,omitempty"`
	UpdatedAt   string  `json:"updated_at,omitempty"`
}

// OrderItem is a single line of an order
type OrderItem struct {
	ID        int     `json:"id"`
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Order is a placed marketplace order. Status is a free-form string and must
// be compared with HasStatus rather than ==.
type Order struct {
	ID          int         `json:"id"`
	TotalAmount float64     `json:"total_amount"`
	Status      string      `json:"status"`
	Operator    string      `json:"operator"`
	Items       []OrderItem `json:"items"`
	CreatedAt   string      `json:"created_at,omitempty"`
	UpdatedAt   string      `json:"updated_at,omitempty"`
}

// CartItem is an entry in the authenticated user's cart
type CartItem struct {
	ID        int     `json:"id"`
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
}

// ServiceProvider is an expert listed in the directory
type ServiceProvider struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	JobTitle    string `json:"job_title"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// Review is a public rating left for a service provider. Rating is 1-5.
type Review struct {
	ID                int    `json:"id"`
	ServiceProviderID int    `json:"service_provider_id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	Rating            int    `json:"rating"`
	Comment           string `json:"comment"`
	CreatedAt         string `json:"created_at,omitempty"`
}

// Contact is a message submitted through the contact form
type Contact struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	RequestType string `json:"request_type"`
	Object      string `json:"object"`
	Message     string `json:"message"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// Formalisation is a business-registration assistance request
type Formalisation struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	Structure   string `json:"structure"`
	Sector      string `json:"sector"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// BlogPost is a published article. Image and video are optional uploads.
type BlogPost struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Author    string `json:"author"`
	Image     string `json:"image,omitempty"`
	Video     string `json:"video,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// BlogComment is a public comment on a blog post
type BlogComment struct {
	ID        int    `json:"id"`
	BlogID    int    `json:"blog_id"`
	Name      string `json:"name"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at,omitempty"`
}

// SuccessStory is a showcased customer story
type SuccessStory struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// Category is the shared taxonomy for projects and products
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// Newsletter is a sent campaign
type Newsletter struct {
	ID        int    `json:"id"`
	Subject   string `json:"subject"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at,omitempty"`
}

// list response wrappers

type ProjectList struct {
	Projects []Project `json:"projects"`
}

type ProductList struct {
	Products []Product `json:"products"`
}

type OrderList struct {
	Orders []Order `json:"orders"`
}

type CartList struct {
	Items []CartItem `json:"items"`
}

type ServiceProviderList struct {
	ServiceProviders []ServiceProvider `json:"service_providers"`
}

type ReviewList struct {
	Reviews []Review `json:"reviews"`
}

type ContactList struct {
	Contacts []Contact `json:"contacts"`
}

type FormalisationList struct {
	Formalisations []Formalisation `json:"formalisations"`
}

type BlogList struct {
	Blogs []BlogPost `json:"blogs"`
}

type BlogCommentList struct {
	Comments []BlogComment `json:"comments"`
}

type SuccessStoryList struct {
	SuccessStories []SuccessStory `json:"success_stories"`
}

type CategoryList struct {
	Categories []Category `json:"categories"`
}

type NewsletterList struct {
	Newsletters []Newsletter `json:"newsletters"`
}

type UserList struct {
	Users []User `json:"users"`
}
