// Package domain contains the row shapes the website reads from and writes to
// the hosted database (members, speaker and organization profiles,
// opportunities and editorial content) plus the pricing plan model. The types
// carry no infrastructure concerns so they can be shared across packages.
package domain
