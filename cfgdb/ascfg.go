package cfgdb

import "gnssdrv.dev/ubx"

// NewASCFG returns the application-specific configuration table: a small
// set of receiver settings the driver enforces an exact expected value
// for, distinct from the ICD's much larger set of defaults in NewDEFCFG.
func NewASCFG() *Table {
	t := NewTable()
	add := func(id uint32, name string, typ ubx.ValueType, expected ubx.Value) {
		t.Add(Item{KeyID: id, Name: name, Type: typ, Expected: expected})
	}

	// CFG-ANA
	add(0x10230001, "CFG-ANA-USE_ANA", ubx.Bit, ubx.NewBit(false))

	// CFG-I2C
	add(0x10510003, "CFG-I2C-ENABLED", ubx.Bit, ubx.NewBit(false))

	// CFG-INFMSG
	add(0x20920001, "CFG-INFMSG-UBX_I2C", ubx.Bitfield8, ubx.NewBitfield8(0x00))
	add(0x20920002, "CFG-INFMSG-UBX_UART1", ubx.Bitfield8, ubx.NewBitfield8(0x01|0x02))
	add(0x20920003, "CFG-INFMSG-UBX_UART2", ubx.Bitfield8, ubx.NewBitfield8(0x00))
	add(0x20920005, "CFG-INFMSG-UBX_SPI", ubx.Bitfield8, ubx.NewBitfield8(0x00))
	add(0x20920006, "CFG-INFMSG-NMEA_I2C", ubx.Bitfield8, ubx.NewBitfield8(0x00))
	add(0x20920007, "CFG-INFMSG-NMEA_UART1", ubx.Bitfield8, ubx.NewBitfield8(0x00))
	add(0x20920008, "CFG-INFMSG-NMEA_UART2", ubx.Bitfield8, ubx.NewBitfield8(0x00))
	add(0x20920009, "CFG-INFMSG-NMEA_USB", ubx.Bitfield8, ubx.NewBitfield8(0x00))
	add(0x2092000A, "CFG-INFMSG-NMEA_SPI", ubx.Bitfield8, ubx.NewBitfield8(0x00))

	// CFG-MSGOUT, rate null on every port except where noted.
	msgoutZero := []struct {
		id   uint32
		name string
	}{
		{0x209100ba, "CFG-MSGOUT-NMEA_ID_GGA_I2C"},
		{0x209100be, "CFG-MSGOUT-NMEA_ID_GGA_SPI"},
		{0x209100bb, "CFG-MSGOUT-NMEA_ID_GGA_UART1"},
		{0x209100bc, "CFG-MSGOUT-NMEA_ID_GGA_UART2"},
		{0x209100bd, "CFG-MSGOUT-NMEA_ID_GGA_USB"},
		{0x209100c9, "CFG-MSGOUT-NMEA_ID_GLL_I2C"},
		{0x209100cd, "CFG-MSGOUT-NMEA_ID_GLL_SPI"},
		{0x209100ca, "CFG-MSGOUT-NMEA_ID_GLL_UART1"},
		{0x209100cb, "CFG-MSGOUT-NMEA_ID_GLL_UART2"},
		{0x209100cc, "CFG-MSGOUT-NMEA_ID_GLL_USB"},
		{0x209100bf, "CFG-MSGOUT-NMEA_ID_GSA_I2C"},
		{0x209100c3, "CFG-MSGOUT-NMEA_ID_GSA_SPI"},
		{0x209100c0, "CFG-MSGOUT-NMEA_ID_GSA_UART1"},
		{0x209100c1, "CFG-MSGOUT-NMEA_ID_GSA_UART2"},
		{0x209100c2, "CFG-MSGOUT-NMEA_ID_GSA_USB"},
		{0x209100c4, "CFG-MSGOUT-NMEA_ID_GSV_I2C"},
		{0x209100c8, "CFG-MSGOUT-NMEA_ID_GSV_SPI"},
		{0x209100c5, "CFG-MSGOUT-NMEA_ID_GSV_UART1"},
		{0x209100c6, "CFG-MSGOUT-NMEA_ID_GSV_UART2"},
		{0x209100c7, "CFG-MSGOUT-NMEA_ID_GSV_USB"},
		{0x209100ab, "CFG-MSGOUT-NMEA_ID_RMC_I2C"},
		{0x209100af, "CFG-MSGOUT-NMEA_ID_RMC_SPI"},
		{0x209100ac, "CFG-MSGOUT-NMEA_ID_RMC_UART1"},
		{0x209100ad, "CFG-MSGOUT-NMEA_ID_RMC_UART2"},
		{0x209100ae, "CFG-MSGOUT-NMEA_ID_RMC_USB"},
		{0x209100b0, "CFG-MSGOUT-NMEA_ID_VTG_I2C"},
		{0x209100b4, "CFG-MSGOUT-NMEA_ID_VTG_SPI"},
		{0x209100b1, "CFG-MSGOUT-NMEA_ID_VTG_UART1"},
		{0x209100b2, "CFG-MSGOUT-NMEA_ID_VTG_UART2"},
		{0x209100b3, "CFG-MSGOUT-NMEA_ID_VTG_USB"},
	}
	for _, m := range msgoutZero {
		add(m.id, m.name, ubx.U8, ubx.NewU8(0))
	}
	add(0x20910009, "CFG-MSGOUT-UBX_NAV_PVT_USB", ubx.U8, ubx.NewU8(1))
	add(0x2091001d, "CFG-MSGOUT-UBX_NAV_STATUS_USB", ubx.U8, ubx.NewU8(1))

	// CFG-NAVSPG (FIXMODE, INIFIX3D, INFIL_MINSVS, INFIL_MINELEV are
	// commented out upstream and intentionally not carried here)
	add(0x10110019, "CFG-NAVSPG-USE_PPP", ubx.Bit, ubx.NewBit(false))
	add(0x20110021, "CFG-NAVSPG-DYNMODEL", ubx.Enum8, ubx.NewEnum8(2))

	// CFG-PM
	add(0x20d00001, "CFG-PM-OPERATEMODE", ubx.Enum8, ubx.NewEnum8(1))
	add(0x40d00002, "CFG-PM-POSUPDATEPERIOD", ubx.U32, ubx.NewU32(60))

	// CFG-QZSS
	add(0x10370005, "CFG-QZSS-USE_SLAS_DGNSS", ubx.Bit, ubx.NewBit(false))

	// CFG-SBAS
	add(0x10360003, "CFG-SBAS-USE_RANGING", ubx.Bit, ubx.NewBit(false))
	add(0x10360004, "CFG-SBAS-USE_DIFFCORR", ubx.Bit, ubx.NewBit(false))

	// CFG-SIGNAL
	add(0x10310020, "CFG-SIGNAL-SBAS_ENA", ubx.Bit, ubx.NewBit(false))
	add(0x10310005, "CFG-SIGNAL-SBAS_L1CA_ENA", ubx.Bit, ubx.NewBit(false))

	// CFG-UART1INPROT / CFG-UART1OUTPROT / CFG-UART2
	add(0x10730001, "CFG-UART1INPROT-UBX", ubx.Bit, ubx.NewBit(false))
	add(0x10730004, "CFG-UART1INPROT-RTCM3X", ubx.Bit, ubx.NewBit(false))
	add(0x10740002, "CFG-UART1OUTPROT-NMEA", ubx.Bit, ubx.NewBit(false))
	add(0x10530005, "CFG-UART2-ENABLED", ubx.Bit, ubx.NewBit(false))

	return t
}
