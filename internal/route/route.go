// Copyright (c) 2026 Aura Vanya
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package route maps ticket categories to department support addresses.
package route

import "github.com/callrav/ticketrouter/internal/models"

// Departments holds the support mailbox for each department.
type Departments struct {
	Frontend string
	Backend  string
	Sysops   string
}

// DefaultDepartments are the addresses used when none are configured.
var DefaultDepartments = Departments{
	Frontend: "frontend@fakemail.com",
	Backend:  "backend@fakemail.com",
	Sysops:   "sysops@fakemail.com",
}

// Router resolves destination addresses for a ticket category.
type Router struct {
	departments Departments
}

// New creates a router over the given department addresses.
func New(departments Departments) *Router {
	return &Router{departments: departments}
}

// Addresses returns the ordered, duplicate-free destination list for a
// category. Cross-functional tickets fan out to all three departments in
// frontend, backend, sysops order. An unknown category yields an empty
// list; the forwarder treats that as nothing to send.
func (r *Router) Addresses(category models.Category) []string {
	switch category {
	case models.CategoryFrontend:
		return []string{r.departments.Frontend}
	case models.CategoryBackend:
		return []string{r.departments.Backend}
	case models.CategorySysops:
		return []string{r.departments.Sysops}
	case models.CategoryCrossFunctional:
		return []string{r.departments.Frontend, r.departments.Backend, r.departments.Sysops}
	default:
		return nil
	}
}
