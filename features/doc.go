// Package features runs the Gherkin scenarios in cart.feature against the
// cart service and the file store.
package features
