// Package productv1 holds the wire contract of the product.v1.ProductService gRPC API,
// described by pkg/api/proto/product/v1/product.proto.
//
// Messages are plain Go structs marshaled with the JSON codec registered by this
// package; the generated-style client selects that codec on every call.
package productv1
