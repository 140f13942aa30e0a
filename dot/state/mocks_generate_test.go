// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

//go:generate mockgen -destination=mocks_database_test.go -package $GOPACKAGE github.com/ChainSafe/slotguard/internal/database Database,Batch
//go:generate mockgen -destination=mock_metrics_test.go -package $GOPACKAGE . Metrics
