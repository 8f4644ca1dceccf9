// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Resource names a managed collection on the content API. It is used as the
// path segment of every item endpoint and as the upload folder.
type Resource string

const (
	ResourceBlogs    Resource = "blogs"
	ResourceProducts Resource = "products"
)

// Resources lists every resource the admin client can manage.
func Resources() []Resource {
	return []Resource{ResourceBlogs, ResourceProducts}
}

// Valid reports whether r is one of [Resources].
func (r Resource) Valid() bool {
	return r == ResourceBlogs || r == ResourceProducts
}

func (r Resource) String() string {
	return string(r)
}
