package cfgdb

import "gnssdrv.dev/ubx"

// NewDEFCFG returns the remainder of the ICD default configuration: a
// representative subset of the keys the ICD documents a default for, not
// the full list. The literal omits every id covered by NewASCFG, so the
// two tables are disjoint.
func NewDEFCFG() *Table {
	t := NewTable()
	add := func(id uint32, name string, typ ubx.ValueType, expected ubx.Value) {
		t.Add(Item{KeyID: id, Name: name, Type: typ, Expected: expected})
	}

	add(0x30230002, "CFG-ANA-ORBMAXERR", ubx.U16, ubx.NewU16(100))
	add(0x10260013, "CFG-BATCH-ENABLE", ubx.Bit, ubx.NewBit(false))
	add(0x10260014, "CFG-BATCH-PIOENABLE", ubx.Bit, ubx.NewBit(false))
	add(0x30260015, "CFG-BATCH-MAXENTRIES", ubx.U16, ubx.NewU16(0))
	add(0x30260016, "CFG-BATCH-WARNTHRS", ubx.U16, ubx.NewU16(0))
	add(0x10260018, "CFG-BATCH-PIOACTIVELOW", ubx.Bit, ubx.NewBit(false))
	add(0x20260019, "CFG-BATCH-PIOID", ubx.U8, ubx.NewU8(0))
	add(0x1026001A, "CFG-BATCH-EXTRAPVT", ubx.Bit, ubx.NewBit(false))
	add(0x1026001B, "CFG-BATCH-EXTRAODO", ubx.Bit, ubx.NewBit(false))
	add(0x20240011, "CFG-GEOFENCE-CONFLVL", ubx.Enum8, ubx.NewEnum8(0))
	add(0x10240012, "CFG-GEOFENCE-USE_PIO", ubx.Bit, ubx.NewBit(false))
	add(0x20240013, "CFG-GEOFENCE-PINPOL", ubx.Enum8, ubx.NewEnum8(0))
	add(0x20240014, "CFG-GEOFENCE-PIN", ubx.U8, ubx.NewU8(0))
	add(0x10240020, "CFG-GEOFENCE-USE_FENCE1", ubx.Bit, ubx.NewBit(false))
	add(0x40240021, "CFG-GEOFENCE-FENCE1_LAT", ubx.I32, ubx.NewI32(0))
	add(0x40240022, "CFG-GEOFENCE-FENCE1_LON", ubx.I32, ubx.NewI32(0))
	add(0x40240023, "CFG-GEOFENCE-FENCE1_RAD", ubx.U32, ubx.NewU32(0))
	add(0x10240030, "CFG-GEOFENCE-USE_FENCE2", ubx.Bit, ubx.NewBit(false))
	add(0x40240031, "CFG-GEOFENCE-FENCE2_LAT", ubx.I32, ubx.NewI32(0))
	add(0x40240032, "CFG-GEOFENCE-FENCE2_LON", ubx.I32, ubx.NewI32(0))
	add(0x40240033, "CFG-GEOFENCE-FENCE2_RAD", ubx.U32, ubx.NewU32(0))
	add(0x10240040, "CFG-GEOFENCE-USE_FENCE3", ubx.Bit, ubx.NewBit(false))
	add(0x40240041, "CFG-GEOFENCE-FENCE3_LAT", ubx.I32, ubx.NewI32(0))
	add(0x40240042, "CFG-GEOFENCE-FENCE3_LON", ubx.I32, ubx.NewI32(0))
	add(0x40240043, "CFG-GEOFENCE-FENCE3_RAD", ubx.U32, ubx.NewU32(0))
	add(0x10240050, "CFG-GEOFENCE-USE_FENCE4", ubx.Bit, ubx.NewBit(false))
	add(0x40240051, "CFG-GEOFENCE-FENCE4_LAT", ubx.I32, ubx.NewI32(0))
	add(0x40240052, "CFG-GEOFENCE-FENCE4_LON", ubx.I32, ubx.NewI32(0))
	add(0x40240053, "CFG-GEOFENCE-FENCE4_RAD", ubx.U32, ubx.NewU32(0))
	add(0x10A3002E, "CFG-HW-ANT_CFG_VOLTCTRL", ubx.Bit, ubx.NewBit(false))
	add(0x10A3002F, "CFG-HW-ANT_CFG_SHORTDET", ubx.Bit, ubx.NewBit(false))
	add(0x10A30030, "CFG-HW-ANT_CFG_SHORTDET_POL", ubx.Bit, ubx.NewBit(true))
	add(0x10A30031, "CFG-HW-ANT_CFG_OPENDET", ubx.Bit, ubx.NewBit(false))
	add(0x10A30032, "CFG-HW-ANT_CFG_OPENDET_POL", ubx.Bit, ubx.NewBit(true))
	add(0x10A30033, "CFG-HW-ANT_CFG_PWRDOWN", ubx.Bit, ubx.NewBit(false))
	add(0x10A30034, "CFG-HW-ANT_CFG_PWRDOWN_POL", ubx.Bit, ubx.NewBit(true))
	add(0x10A30035, "CFG-HW-ANT_CFG_RECOVER", ubx.Bit, ubx.NewBit(false))
	add(0x20A30036, "CFG-HW-ANT_SUP_SWITCH_PIN", ubx.U8, ubx.NewU8(16))
	add(0x20A30037, "CFG-HW-ANT_SUP_SHORT_PIN", ubx.U8, ubx.NewU8(15))
	add(0x20A30038, "CFG-HW-ANT_SUP_OPEN_PIN", ubx.U8, ubx.NewU8(8))
	add(0x30A3003C, "CFG-HW-ANT_ON_SHORT_US", ubx.U16, ubx.NewU16(500))
	add(0x20A30054, "CFG-HW-ANT_SUP_ENGINE", ubx.Enum8, ubx.NewEnum8(0))
	add(0x20A30055, "CFG-HW-ANT_SUP_SHORT_THR", ubx.U8, ubx.NewU8(0))
	add(0x20A30056, "CFG-HW-ANT_SUP_OPEN_THR", ubx.U8, ubx.NewU8(0))
	add(0x20510001, "CFG-I2C-ADDRESS", ubx.U8, ubx.NewU8(132))
	add(0x10510002, "CFG-I2C-EXTENDEDTIMEOUT", ubx.Bit, ubx.NewBit(false))
	add(0x10710001, "CFG-I2CINPROT-UBX", ubx.Bit, ubx.NewBit(true))
	add(0x10710002, "CFG-I2CINPROT-NMEA", ubx.Bit, ubx.NewBit(true))
	add(0x10710004, "CFG-I2CINPROT-RTCM3X", ubx.Bit, ubx.NewBit(true))
	add(0x10720001, "CFG-I2COUTPROT-UBX", ubx.Bit, ubx.NewBit(true))
	add(0x10720002, "CFG-I2COUTPROT-NMEA", ubx.Bit, ubx.NewBit(true))
	add(0x20920004, "CFG-INFMSG-UBX_USB", ubx.Bitfield8, ubx.NewBitfield8(0x00))
	add(0x20410001, "CFG-ITFM-BBTHRESHOLD", ubx.U8, ubx.NewU8(3))
	add(0x20410002, "CFG-ITFM-CWTHRESHOLD", ubx.U8, ubx.NewU8(15))
	add(0x1041000D, "CFG-ITFM-ENABLE", ubx.Bit, ubx.NewBit(false))
	add(0x20410010, "CFG-ITFM-ANTSETTING", ubx.Enum8, ubx.NewEnum8(0))
	add(0x10410013, "CFG-ITFM-ENABLE_AUX", ubx.Bit, ubx.NewBit(false))
	add(0x10DE0002, "CFG-LOGFILTER-RECORD_ENA", ubx.Bit, ubx.NewBit(false))
	add(0x10DE0003, "CFG-LOGFILTER-ONCE_PER_WAKE_UP_ENA", ubx.Bit, ubx.NewBit(false))
	add(0x10DE0004, "CFG-LOGFILTER-APPLY_ALL_FILTERS", ubx.Bit, ubx.NewBit(false))
	add(0x30DE0005, "CFG-LOGFILTER-MIN_INTERVAL", ubx.U16, ubx.NewU16(0))
	add(0x30DE0006, "CFG-LOGFILTER-TIME_THRS", ubx.U16, ubx.NewU16(0))
	add(0x30DE0007, "CFG-LOGFILTER-SPEED_THRS", ubx.U16, ubx.NewU16(0))
	add(0x40DE0008, "CFG-LOGFILTER-POSITION_THRS", ubx.U32, ubx.NewU32(0))
	add(0x20250038, "CFG-MOT-GNSSSPEED_THRS", ubx.U8, ubx.NewU8(0))
	add(0x3025003B, "CFG-MOT-GNSSDIST_THRS", ubx.U16, ubx.NewU16(0))
	add(0x20110011, "CFG-NAVSPG-FIXMODE", ubx.Enum8, ubx.NewEnum8(3))
	add(0x10110013, "CFG-NAVSPG-INIFIX3D", ubx.Bit, ubx.NewBit(false))
	add(0x30110017, "CFG-NAVSPG-WKNROLLOVER", ubx.U16, ubx.NewU16(2117))
	add(0x2011001c, "CFG-NAVSPG-UTCSTANDARD", ubx.Enum8, ubx.NewEnum8(0))
	add(0x10110025, "CFG-NAVSPG-ACKAIDING", ubx.Bit, ubx.NewBit(false))
	add(0x10110061, "CFG-NAVSPG-USE_USRDAT", ubx.Bit, ubx.NewBit(false))
	add(0x50110062, "CFG-NAVSPG-USRDAT_MAJA", ubx.F64, ubx.NewF64(6378137))
	add(0x50110063, "CFG-NAVSPG-USRDAT_FLAT", ubx.F64, ubx.NewF64(298.25722356300002502))
	add(0x40110064, "CFG-NAVSPG-USRDAT_DX", ubx.F32, ubx.NewF32(0))
	add(0x40110065, "CFG-NAVSPG-USRDAT_DY", ubx.F32, ubx.NewF32(0))
	add(0x40110066, "CFG-NAVSPG-USRDAT_DZ", ubx.F32, ubx.NewF32(0))
	add(0x40110067, "CFG-NAVSPG-USRDAT_ROTX", ubx.F32, ubx.NewF32(0))
	add(0x40110068, "CFG-NAVSPG-USRDAT_ROTY", ubx.F32, ubx.NewF32(0))
	add(0x40110069, "CFG-NAVSPG-USRDAT_ROTZ", ubx.F32, ubx.NewF32(0))
	add(0x4011006a, "CFG-NAVSPG-USRDAT_SCALE", ubx.F32, ubx.NewF32(0))
	add(0x201100a1, "CFG-NAVSPG-INFIL_MINSVS", ubx.U8, ubx.NewU8(3))
	add(0x201100a2, "CFG-NAVSPG-INFIL_MAXSVS", ubx.U8, ubx.NewU8(32))
	add(0x201100a3, "CFG-NAVSPG-INFIL_MINCNO", ubx.U8, ubx.NewU8(6))
	add(0x201100a4, "CFG-NAVSPG-INFIL_MINELEV", ubx.I8, ubx.NewI8(5))
	add(0x201100aa, "CFG-NAVSPG-INFIL_NCNOTHRS", ubx.U8, ubx.NewU8(0))
	add(0x201100ab, "CFG-NAVSPG-INFIL_CNOTHRS", ubx.U8, ubx.NewU8(0))
	add(0x301100b1, "CFG-NAVSPG-OUTFIL_PDOP", ubx.U16, ubx.NewU16(250))
	add(0x301100b2, "CFG-NAVSPG-OUTFIL_TDOP", ubx.U16, ubx.NewU16(250))
	add(0x301100b3, "CFG-NAVSPG-OUTFIL_PACC", ubx.U16, ubx.NewU16(100))
	add(0x301100b4, "CFG-NAVSPG-OUTFIL_TACC", ubx.U16, ubx.NewU16(350))
	add(0x301100b5, "CFG-NAVSPG-OUTFIL_FACC", ubx.U16, ubx.NewU16(150))
	add(0x401100c1, "CFG-NAVSPG-CONSTR_ALT", ubx.I32, ubx.NewI32(0))
	add(0x401100c2, "CFG-NAVSPG-CONSTR_ALTVAR", ubx.U32, ubx.NewU32(10000))
	add(0x201100c4, "CFG-NAVSPG-CONSTR_DGNSSTO", ubx.U8, ubx.NewU8(60))
	add(0x201100d6, "CFG-NAVSPG-SIGATTCOMP", ubx.Enum8, ubx.NewEnum8(0))
	add(0x20930001, "CFG-NMEA-PROTVER", ubx.Enum8, ubx.NewEnum8(41))
	add(0x20930002, "CFG-NMEA-MAXSVS", ubx.Enum8, ubx.NewEnum8(0))
	add(0x10930003, "CFG-NMEA-COMPAT", ubx.Bit, ubx.NewBit(false))
	add(0x10930004, "CFG-NMEA-CONSIDER", ubx.Bit, ubx.NewBit(true))
	add(0x10930005, "CFG-NMEA-LIMIT82", ubx.Bit, ubx.NewBit(false))
	add(0x10930006, "CFG-NMEA-HIGHPREC", ubx.Bit, ubx.NewBit(false))
	add(0x20930007, "CFG-NMEA-SVNUMBERING", ubx.Enum8, ubx.NewEnum8(0))
	add(0x10930011, "CFG-NMEA-FILT_GPS", ubx.Bit, ubx.NewBit(false))
	add(0x10930012, "CFG-NMEA-FILT_SBAS", ubx.Bit, ubx.NewBit(false))
	add(0x10930013, "CFG-NMEA-FILT_GAL", ubx.Bit, ubx.NewBit(false))
	add(0x10930015, "CFG-NMEA-FILT_QZSS", ubx.Bit, ubx.NewBit(false))
	add(0x10930016, "CFG-NMEA-FILT_GLO", ubx.Bit, ubx.NewBit(false))
	add(0x10930017, "CFG-NMEA-FILT_BDS", ubx.Bit, ubx.NewBit(false))
	add(0x10930021, "CFG-NMEA-OUT_INVFIX", ubx.Bit, ubx.NewBit(false))
	add(0x10930022, "CFG-NMEA-OUT_MSKFIX", ubx.Bit, ubx.NewBit(false))
	add(0x10930023, "CFG-NMEA-OUT_INVTIME", ubx.Bit, ubx.NewBit(false))
	add(0x10930024, "CFG-NMEA-OUT_INVDATE", ubx.Bit, ubx.NewBit(false))
	add(0x10930025, "CFG-NMEA-OUT_ONLYGPS", ubx.Bit, ubx.NewBit(false))
	add(0x10930026, "CFG-NMEA-OUT_FROZENCOG", ubx.Bit, ubx.NewBit(false))
	add(0x20930031, "CFG-NMEA-MAINTALKERID", ubx.Enum8, ubx.NewEnum8(0))
	add(0x20930032, "CFG-NMEA-GSVTALKERID", ubx.Enum8, ubx.NewEnum8(0))
	add(0x30930033, "CFG-NMEA-BDSTALKERID", ubx.U16, ubx.NewU16(0))
	add(0x10220001, "CFG-ODO-USE_ODO", ubx.Bit, ubx.NewBit(false))
	add(0x20220005, "CFG-ODO-PROFILE", ubx.Enum8, ubx.NewEnum8(0))
	add(0x40d00003, "CFG-PM-ACQPERIOD", ubx.U32, ubx.NewU32(10))
	add(0x40d00004, "CFG-PM-GRIDOFFSET", ubx.U32, ubx.NewU32(0))
	add(0x30d00005, "CFG-PM-ONTIME", ubx.U16, ubx.NewU16(0))
	add(0x20d00006, "CFG-PM-MINACQTIME", ubx.U8, ubx.NewU8(0))
	add(0x20d00007, "CFG-PM-MAXACQTIME", ubx.U8, ubx.NewU8(0))
	add(0x10d00008, "CFG-PM-DONOTENTEROFF", ubx.Bit, ubx.NewBit(false))
	add(0x10d00009, "CFG-PM-WAITTIMEFIX", ubx.Bit, ubx.NewBit(false))
	add(0x10d0000a, "CFG-PM-UPDATEEPH", ubx.Bit, ubx.NewBit(true))
	add(0x20d0000b, "CFG-PM-EXTINTSEL", ubx.Enum8, ubx.NewEnum8(0))
	add(0x10d0000c, "CFG-PM-EXTINTWAKE", ubx.Bit, ubx.NewBit(false))
	add(0x10d0000d, "CFG-PM-EXTINTBACKUP", ubx.Bit, ubx.NewBit(false))
	add(0x10d0000e, "CFG-PM-EXTINTINACTIVE", ubx.Bit, ubx.NewBit(false))
	add(0x40d0000f, "CFG-PM-EXTINTINACTIVITY", ubx.U32, ubx.NewU32(0))
	add(0x10d00010, "CFG-PM-LIMITPEAKCURR", ubx.Bit, ubx.NewBit(false))
	add(0x10370006, "CFG-QZSS-USE_SLAS_TESTMODE", ubx.Bit, ubx.NewBit(false))
	add(0x10370007, "CFG-QZSS-USE_SLAS_RAIM_UNCORR", ubx.Bit, ubx.NewBit(false))
	add(0x30210001, "CFG-RATE-MEAS", ubx.U16, ubx.NewU16(1000))
	add(0x30210002, "CFG-RATE-NAV", ubx.U16, ubx.NewU16(1))
	add(0x20210003, "CFG-RATE-TIMEREF", ubx.Enum8, ubx.NewEnum8(1))
	add(0x10c70001, "CFG-RINV-DUMP", ubx.Bit, ubx.NewBit(false))
	add(0x10c70002, "CFG-RINV-BINARY", ubx.Bit, ubx.NewBit(false))
	add(0x20c70003, "CFG-RINV-DATA_SIZE", ubx.U8, ubx.NewU8(22))
	add(0x50c70004, "CFG-RINV-CHUNK0", ubx.Bitfield64, ubx.NewBitfield64(0x203a656369746f4e))
	add(0x50c70005, "CFG-RINV-CHUNK1", ubx.Bitfield64, ubx.NewBitfield64(0x2061746164206f6e))
	add(0x50c70006, "CFG-RINV-CHUNK2", ubx.Bitfield64, ubx.NewBitfield64(0x0000216465766173))
	add(0x50c70007, "CFG-RINV-CHUNK3", ubx.Bitfield64, ubx.NewBitfield64(0x0000000000000000))
	add(0x10360002, "CFG-SBAS-USE_TESTMODE", ubx.Bit, ubx.NewBit(false))
	add(0x10360005, "CFG-SBAS-USE_INTEGRITY", ubx.Bit, ubx.NewBit(false))
	add(0x50360006, "CFG-SBAS-PRNSCANMASK", ubx.Bitfield64, ubx.NewBitfield64(0x0000000000072b88))
	add(0x10f60009, "CFG-SEC-CFG_LOCK", ubx.Bit, ubx.NewBit(false))
	add(0x30f6000a, "CFG-SEC-CFG_LOCK_UNLOCKGRP1", ubx.U16, ubx.NewU16(0))
	add(0x30f6000b, "CFG-SEC-CFG_LOCK_UNLOCKGRP2", ubx.U16, ubx.NewU16(0))
	add(0x1031001f, "CFG-SIGNAL-GPS_ENA", ubx.Bit, ubx.NewBit(true))
	add(0x10310001, "CFG-SIGNAL-GPS_L1CA_ENA", ubx.Bit, ubx.NewBit(true))
	add(0x10310021, "CFG-SIGNAL-GAL_ENA", ubx.Bit, ubx.NewBit(true))
	add(0x10310007, "CFG-SIGNAL-GAL_E1_ENA", ubx.Bit, ubx.NewBit(true))
	add(0x10310022, "CFG-SIGNAL-BDS_ENA", ubx.Bit, ubx.NewBit(true))
	add(0x1031000d, "CFG-SIGNAL-BDS_B1_ENA", ubx.Bit, ubx.NewBit(true))
	add(0x10310024, "CFG-SIGNAL-QZSS_ENA", ubx.Bit, ubx.NewBit(true))
	add(0x10310012, "CFG-SIGNAL-QZSS_L1CA_ENA", ubx.Bit, ubx.NewBit(true))
	add(0x10310025, "CFG-SIGNAL-GLO_ENA", ubx.Bit, ubx.NewBit(true))
	add(0x10310018, "CFG-SIGNAL-GLO_L1_ENA", ubx.Bit, ubx.NewBit(true))
	add(0x20640001, "CFG-SPI-MAXFF", ubx.U8, ubx.NewU8(50))
	add(0x10640002, "CFG-SPI-CPOLARITY", ubx.Bit, ubx.NewBit(false))
	add(0x10640003, "CFG-SPI-CPHASE", ubx.Bit, ubx.NewBit(false))
	add(0x10640005, "CFG-SPI-EXTENDEDTIMEOUT", ubx.Bit, ubx.NewBit(false))
	add(0x10640006, "CFG-SPI-ENABLED", ubx.Bit, ubx.NewBit(false))
	add(0x10790001, "CFG-SPIINPROT-UBX", ubx.Bit, ubx.NewBit(true))
	add(0x10790002, "CFG-SPIINPROT-NMEA", ubx.Bit, ubx.NewBit(true))
	add(0x10790004, "CFG-SPIINPROT-RTCM3X", ubx.Bit, ubx.NewBit(true))
	add(0x107a0001, "CFG-SPIOUTPROT-UBX", ubx.Bit, ubx.NewBit(true))
	add(0x107a0002, "CFG-SPIOUTPROT-NMEA", ubx.Bit, ubx.NewBit(true))
	add(0x20050023, "CFG-TP-PULSE_DEF", ubx.Enum8, ubx.NewEnum8(0))
	add(0x20050030, "CFG-TP-PULSE_LENGTH_DEF", ubx.Enum8, ubx.NewEnum8(1))
	add(0x30050001, "CFG-TP-ANT_CABLEDELAY", ubx.I16, ubx.NewI16(50))
	add(0x40050002, "CFG-TP-PERIOD_TP1", ubx.U32, ubx.NewU32(1000000))
	add(0x40050003, "CFG-TP-PERIOD_LOCK_TP1", ubx.U32, ubx.NewU32(1000000))
	add(0x40050024, "CFG-TP-FREQ_TP1", ubx.U32, ubx.NewU32(1))
	add(0x40050025, "CFG-TP-FREQ_LOCK_TP1", ubx.U32, ubx.NewU32(1))
	add(0x40050004, "CFG-TP-LEN_TP1", ubx.U32, ubx.NewU32(0))
	add(0x40050005, "CFG-TP-LEN_LOCK_TP1", ubx.U32, ubx.NewU32(100000))
	add(0x5005002a, "CFG-TP-DUTY_TP1", ubx.F64, ubx.NewF64(0))
	add(0x5005002b, "CFG-TP-DUTY_LOCK_TP1", ubx.F64, ubx.NewF64(10))
	add(0x40050006, "CFG-TP-USER_DELAY_TP1", ubx.I32, ubx.NewI32(0))
	add(0x10050007, "CFG-TP-TP1_ENA", ubx.Bit, ubx.NewBit(true))
	add(0x10050008, "CFG-TP-SYNC_GNSS_TP1", ubx.Bit, ubx.NewBit(true))
	add(0x10050009, "CFG-TP-USE_LOCKED_TP1", ubx.Bit, ubx.NewBit(true))
	add(0x1005000a, "CFG-TP-ALIGN_TO_TOW_TP1", ubx.Bit, ubx.NewBit(true))
	add(0x1005000b, "CFG-TP-POL_TP1", ubx.Bit, ubx.NewBit(true))
	add(0x2005000c, "CFG-TP-TIMEGRID_TP1", ubx.Enum8, ubx.NewEnum8(0))
	add(0x4005000d, "CFG-TP-PERIOD_TP2", ubx.U32, ubx.NewU32(1000000))
	add(0x4005000e, "CFG-TP-PERIOD_LOCK_TP2", ubx.U32, ubx.NewU32(1000000))
	add(0x40050026, "CFG-TP-FREQ_TP2", ubx.U32, ubx.NewU32(1))
	add(0x40050027, "CFG-TP-FREQ_LOCK_TP2", ubx.U32, ubx.NewU32(1))
	add(0x4005000f, "CFG-TP-LEN_TP2", ubx.U32, ubx.NewU32(0))
	add(0x40050010, "CFG-TP-LEN_LOCK_TP2", ubx.U32, ubx.NewU32(100000))
	add(0x5005002c, "CFG-TP-DUTY_TP2", ubx.F64, ubx.NewF64(0))
	add(0x5005002d, "CFG-TP-DUTY_LOCK_TP2", ubx.F64, ubx.NewF64(10))
	add(0x40050011, "CFG-TP-USER_DELAY_TP2", ubx.I32, ubx.NewI32(0))
	add(0x10050012, "CFG-TP-TP2_ENA", ubx.Bit, ubx.NewBit(false))
	add(0x10050013, "CFG-TP-SYNC_GNSS_TP2", ubx.Bit, ubx.NewBit(true))
	add(0x10050014, "CFG-TP-USE_LOCKED_TP2", ubx.Bit, ubx.NewBit(true))
	add(0x10050015, "CFG-TP-ALIGN_TO_TOW_TP2", ubx.Bit, ubx.NewBit(true))
	add(0x10050016, "CFG-TP-POL_TP2", ubx.Bit, ubx.NewBit(true))
	add(0x20050017, "CFG-TP-TIMEGRID_TP2", ubx.Enum8, ubx.NewEnum8(0))
	add(0x10a20001, "CFG-TXREADY-ENABLED", ubx.Bit, ubx.NewBit(false))
	add(0x10a20002, "CFG-TXREADY-POLARITY", ubx.Bit, ubx.NewBit(false))
	add(0x20a20003, "CFG-TXREADY-PIN", ubx.U8, ubx.NewU8(0))
	add(0x30a20004, "CFG-TXREADY-THRESHOLD", ubx.U16, ubx.NewU16(0))
	add(0x20a20005, "CFG-TXREADY-INTERFACE", ubx.Enum8, ubx.NewEnum8(0))
	add(0x40520001, "CFG-UART1-BAUDRATE", ubx.U32, ubx.NewU32(38400))
	add(0x20520002, "CFG-UART1-STOPBITS", ubx.Enum8, ubx.NewEnum8(1))
	add(0x20520003, "CFG-UART1-DATABITS", ubx.Enum8, ubx.NewEnum8(0))
	add(0x20520004, "CFG-UART1-PARITY", ubx.Enum8, ubx.NewEnum8(0))
	add(0x10520005, "CFG-UART1-ENABLED", ubx.Bit, ubx.NewBit(true))
	add(0x10730002, "CFG-UART1INPROT-NMEA", ubx.Bit, ubx.NewBit(true))
	add(0x10740001, "CFG-UART1OUTPROT-UBX", ubx.Bit, ubx.NewBit(true))
	add(0x40530001, "CFG-UART2-BAUDRATE", ubx.U32, ubx.NewU32(38400))
	add(0x20530002, "CFG-UART2-STOPBITS", ubx.Enum8, ubx.NewEnum8(1))
	add(0x20530003, "CFG-UART2-DATABITS", ubx.Enum8, ubx.NewEnum8(0))
	add(0x20530004, "CFG-UART2-PARITY", ubx.Enum8, ubx.NewEnum8(0))
	add(0x10750001, "CFG-UART2INPROT-UBX", ubx.Bit, ubx.NewBit(true))
	add(0x10750002, "CFG-UART2INPROT-NMEA", ubx.Bit, ubx.NewBit(true))
	add(0x10750004, "CFG-UART2INPROT-RTCM3X", ubx.Bit, ubx.NewBit(true))
	add(0x10760001, "CFG-UART2OUTPROT-UBX", ubx.Bit, ubx.NewBit(true))
	add(0x10760002, "CFG-UART2OUTPROT-NMEA", ubx.Bit, ubx.NewBit(true))
	add(0x10650001, "CFG-USB-ENABLED", ubx.Bit, ubx.NewBit(true))
	add(0x10650002, "CFG-USB-SELFPOW", ubx.Bit, ubx.NewBit(true))
	add(0x3065000a, "CFG-USB-VENDOR_ID", ubx.U16, ubx.NewU16(5446))
	add(0x3065000b, "CFG-USB-PRODUCT_ID", ubx.U16, ubx.NewU16(425))
	add(0x3065000c, "CFG-USB-POWER", ubx.U16, ubx.NewU16(0))
	add(0x5065000d, "CFG-USB-VENDOR_STR0", ubx.Bitfield64, ubx.NewBitfield64(0x4120786f6c622d75))
	add(0x5065000e, "CFG-USB-VENDOR_STR1", ubx.Bitfield64, ubx.NewBitfield64(0x2e777777202d2047))
	add(0x5065000f, "CFG-USB-VENDOR_STR2", ubx.Bitfield64, ubx.NewBitfield64(0x632e786f6c622d75))
	add(0x50650010, "CFG-USB-VENDOR_STR3", ubx.Bitfield64, ubx.NewBitfield64(0x0000000000006d6f))
	add(0x50650011, "CFG-USB-PRODUCT_STR0", ubx.Bitfield64, ubx.NewBitfield64(0x4720786f6c622d75))
	add(0x50650012, "CFG-USB-PRODUCT_STR1", ubx.Bitfield64, ubx.NewBitfield64(0x656365722053534e))
	add(0x50650013, "CFG-USB-PRODUCT_STR2", ubx.Bitfield64, ubx.NewBitfield64(0x0000000072657669))
	add(0x50650014, "CFG-USB-PRODUCT_STR3", ubx.Bitfield64, ubx.NewBitfield64(0x0000000000000000))
	add(0x50650015, "CFG-USB-SERIAL_NO_STR0", ubx.Bitfield64, ubx.NewBitfield64(0x0000000000000000))
	add(0x50650016, "CFG-USB-SERIAL_NO_STR1", ubx.Bitfield64, ubx.NewBitfield64(0x0000000000000000))
	add(0x50650017, "CFG-USB-SERIAL_NO_STR2", ubx.Bitfield64, ubx.NewBitfield64(0x0000000000000000))
	add(0x50650018, "CFG-USB-SERIAL_NO_STR3", ubx.Bitfield64, ubx.NewBitfield64(0x0000000000000000))
	add(0x10770001, "CFG-USBINPROT-UBX", ubx.Bit, ubx.NewBit(true))
	add(0x10770002, "CFG-USBINPROT-NMEA", ubx.Bit, ubx.NewBit(true))
	add(0x10770004, "CFG-USBINPROT-RTCM3X", ubx.Bit, ubx.NewBit(true))
	add(0x10780001, "CFG-USBOUTPROT-UBX", ubx.Bit, ubx.NewBit(true))
	add(0x10780002, "CFG-USBOUTPROT-NMEA", ubx.Bit, ubx.NewBit(true))

	return t
}
