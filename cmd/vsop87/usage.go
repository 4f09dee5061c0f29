package main

const usage = `============
Planetary positions by VSOP87 theory
============

DESCRIPTION
===========

Loads source files of VSOP87 and calculates the series of a planet at a
given Julian Day.

USAGE
=====

vsop87 series --dataset FILE_NAME [--jd JULIAN_DAY] [--group index|variable]
vsop87 position --dataset FILE_NAME [--jd JULIAN_DAY] [--fk5]
vsop87 jd [--date DATE]
vsop87 poly --name lunar-node|solar-longitude[-j2000] [--date DATE|JULIAN_DAY]

If --jd is omitted the current position is computed. FILE_NAME is resolved in
the directory set by vsop87.directory in conf.toml (or VSOP87_VSOP87_DIRECTORY).
--fk5 only applies to the J2000 versions A, B and E.

REFERENCE
=========

VI/81 Planetary Solutions VSOP87 (Bretagnon+, 1988)
http://cdsarc.u-strasbg.fr/viz-bin/ftp-index?VI/81
`
