/*
Package paramnav implements a uniform, navigable view over the heterogeneous
parameters a host application exposes on its tracks, items, takes and effects,
including parameters of effects nested inside arbitrarily deep containers.

The package defines the Param contract, which normalizes wildly different
backing stores (numeric fields, boolean toggles, enumerated named settings,
dynamically ranged effect parameters) into one interface with consistent
bounds, step sizes and text formatting. A Source catalogs the parameters of
one subject; the Param for an entry is only materialized when the entry is
selected.

The host is reached exclusively through the capability interfaces in host.go,
which are injected at construction. A generic dialog can thus be driven
entirely with a Session: it enumerates the (filtered) parameter names, steps
values with Session.Step so that every step produces an observably distinct
formatted value, and routes announcements through the Reporter.

FxIterator addresses effects inside containers through the host's flat index
space: each visited node gets a single non-negative integer address which the
host's own effect parameter API accepts. Flat indices are only valid until
the user restructures the effects, so a new iterator should be constructed
for each navigation session rather than caching indices.
*/
package paramnav
