// Package environment defines the deployment environments and their parsing.
package environment
