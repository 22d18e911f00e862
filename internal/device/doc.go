// Package device provides the memory capacities of supported target parts.
//
// Capacities live in an embedded YAML catalog (catalog/devices.yaml) so that
// adding a part is a data change:
//
//	devices:
//	  - name: STM32F446RC
//	    core: cortex-m4
//	    flash_kib: 256
//	    ram_kib: 128
//	    aliases: [STM32F446RCT6]
//
// Lookups accept the part number or any alias, case-insensitively, so the
// DEVICE value from an RT-Thread rtconfig.py ("STM32F446RCT6") works as is.
//
//	catalog, _ := device.LoadCatalog()
//	profile, err := catalog.Lookup("stm32f446rct6")
//	// profile.FlashBytes == 262144, profile.RAMBytes == 131072
package device
