// Package fixture provides the rig model for luxd: attribute codecs,
// fixture types, fixture instances, the rig itself, and the selector
// algebra used to address groups of fixtures.
//
// # Architecture
//
//	┌──────────────────────────────────────────────────────────────────┐
//	│                            Rig Model                              │
//	│                                                                   │
//	│  ┌───────────────┐   ┌────────────────┐   ┌───────────────────┐  │
//	│  │     Attr      │   │  FixtureType   │   │      Fixture      │  │
//	│  │(attributes.go)│──▶│   (types.go)   │──▶│   (fixture.go)    │  │
//	│  │               │   │                │   │                   │  │
//	│  │ • Encode      │   │ • Layout       │   │ • universe/address│  │
//	│  │ • Width       │   │ • Segments     │   │ • position        │  │
//	│  │ • Defaults    │   │ • Encode state │   │ • tags            │  │
//	│  └───────────────┘   └────────────────┘   └───────────────────┘  │
//	│                                                    │              │
//	│  ┌───────────────┐   ┌────────────────┐            ▼              │
//	│  │   Selector    │   │     State      │   ┌───────────────────┐  │
//	│  │ (selector.go) │──▶│   (value.go)   │   │       Rig         │  │
//	│  │               │   │                │   │     (rig.go)      │  │
//	│  │ • All/ByTag   │   │ • sparse map   │   │ • ordered list    │  │
//	│  │ • set algebra │   │ • tagged values│   │ • address checks  │  │
//	│  └───────────────┘   └────────────────┘   └───────────────────┘  │
//	└──────────────────────────────────────────────────────────────────┘
//
// # Key Types
//
//   - Attr: one logical control parameter and its DMX byte encoding
//   - FixtureType: ordered attribute composition, shared by many fixtures
//   - Fixture: an addressable instance (universe, address, position, tags)
//   - Rig: the insertion-ordered fixture collection; its order is canonical
//   - State: sparse attribute-name → value mapping; unset means default
//   - Selector: pure Rig → ordered fixture sequence, with set combinators
//
// # Thread Safety
//
// FixtureTypes are immutable after construction and safe to share. Fixtures
// and Rigs are built once at show-load time and must not be mutated while a
// frame is being rendered; the engine documents the frame-boundary contract.
package fixture
