// Package restaurant holds read models of the external restaurant catalog:
// the Restaurant snapshot used at checkout and its MenuItems.
package restaurant
