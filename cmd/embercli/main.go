package main

import (
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/ember3d/ember/core"
)

// embercli dumps the physical device inventory as JSON. It runs headless
// through the system loader, no window or surface involved.
func main() {
	cfg := core.InstanceConfiguration{
		ApplicationName:   "Ember command line",
		EngineName:        "Ember",
		EnabledValidation: false,
	}

	coreInstance, err := core.NewVulkanInstance(cfg, nil)
	if err != nil {
		log.Fatal(err)
	}

	if bytes, err := json.Marshal(coreInstance.PhysicalDevicesInfo()); err == nil {
		fmt.Printf("%s", bytes)
	} else {
		log.Fatal(err)
	}

	coreInstance.Destroy()
}
