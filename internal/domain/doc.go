// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/workflow, domain/task).
// This root package holds sentinel errors, the business rule codes raised by
// the workflow aggregate, and identifier generation.
package domain
