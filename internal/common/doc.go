// Package common holds small helpers shared across packages.
package common
