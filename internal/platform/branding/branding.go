// Package branding centralizes user-facing product naming.
package branding

// AppName is the product name shown in window titles and server metadata.
const AppName = "Sigil"
