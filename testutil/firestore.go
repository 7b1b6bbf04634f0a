package testutil

import (
	"context"
	"testing"

	"cloud.google.com/go/firestore"
)

// emulatorProject is the project ID used against the Firestore emulator.
// The emulator accepts any ID; a fixed one keeps test data in one place.
const emulatorProject = "helpboard-test"

// NewFirestoreClient returns a Firestore client connected to the emulator
// named by FIRESTORE_EMULATOR_HOST. The client library picks the emulator
// up from that variable. Skips the test if it is not set.
func NewFirestoreClient(t *testing.T) *firestore.Client {
	t.Helper()
	requireEnv(t, "FIRESTORE_EMULATOR_HOST")

	client, err := firestore.NewClient(context.Background(), emulatorProject)
	if err != nil {
		t.Fatalf("testutil.NewFirestoreClient: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}
