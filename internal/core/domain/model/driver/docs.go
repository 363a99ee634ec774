// Package driver provides the Driver entity: a delivery partner with an active
// flag controlled by the platform and an availability toggle controlled by the
// driver.
package driver
