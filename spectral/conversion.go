/*
 * conversion.go, part of goconformers.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package spectral

//This provides useful conversion factors and other constants

//Conversions
const (
	H2Kcal  = 627.5095 //Hartree 2 Kcal/mol
	Kcal2H  = 1 / 627.5095
	EV2Wn   = 8065.544 //eV to wavenumbers (cm^-1)
	EVNm    = 1239.8   //eV*nm
	NmWn    = 1e7      //nm*cm^-1
	KJ2Kcal = 1 / 4.184
)

//Others
const (
	Boltzmann   = 0.0019872041 //kcal/(mol*K)
	Temperature = 298.15       //default temperature, K
	Laser       = 532.0        //default laser wavelength for scattering spectra, nm
)

//Factors used to turn spectral activities into intensities.
const (
	dipFactor = 0.010886
	rotFactor = 0.0435441
	oscFactor = 2.315351857e08
)
