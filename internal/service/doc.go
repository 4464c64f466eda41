// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and repositories
// (defined in internal/store) to fulfill application features.
//
// Key components:
//
// 1. Service Interfaces:
//   - Define the operations available to the HTTP handlers
//   - Each service focuses on one domain area (users, contacts, addresses)
//
// 2. Ownership:
//   - Every contact and address operation is scoped to the acting username
//   - Address operations first check that the parent contact is owned
//
// 3. Error Handling:
//   - Expected conditions surface as *domain.Error values from the store or auth packages
//   - Unexpected failures are wrapped with context and classified as internal by the API layer
//
// The service layer depends on domain entities and repository interfaces (from store),
// but never on specific infrastructure implementations.
package service
