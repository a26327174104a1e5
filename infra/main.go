package main

import (
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/tsmithofficiating/rules-backend/infra/cloudrun"
	"github.com/tsmithofficiating/rules-backend/infra/docker"
	"github.com/tsmithofficiating/rules-backend/infra/firestore"
	"github.com/tsmithofficiating/rules-backend/infra/kms"
	"github.com/tsmithofficiating/rules-backend/infra/provider"
	"github.com/tsmithofficiating/rules-backend/infra/vertex"
)

func main() {
	pulumi.Run(func(ctx *pulumi.Context) error {
		// set default provider with the correct project
		prov, err := provider.SetupDefaultProvider(ctx)
		if err != nil {
			return err
		}

		// enable firestore and create a database for the project
		err = firestore.SetupFirestore(ctx, prov)
		if err != nil {
			return err
		}

		// enable vertex for the qa path
		err = vertex.SetupVertex(ctx, prov)
		if err != nil {
			return err
		}

		// kms key for qa session content at rest
		_, err = kms.SetupKMS(ctx, prov)
		if err != nil {
			return err
		}
		kmsKeyName, err := kms.CreateKey(ctx, prov, "rules", "qa-sessions")
		if err != nil {
			return err
		}

		// create docker repo
		repo, err := docker.CreateCloudrunRepo(ctx)
		if err != nil {
			return err
		}

		_, err = cloudrun.SetupCloudRun(ctx, prov, kmsKeyName, repo)
		if err != nil {
			return err
		}

		return nil
	})
}
